package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tkc/vibe-todo/internal/config"
	"github.com/tkc/vibe-todo/internal/logging"
	"github.com/tkc/vibe-todo/internal/manager"
	"github.com/tkc/vibe-todo/internal/notify"
)

var (
	cfg     *config.Config
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd はルートコマンド
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Interactive to-do list manager with undo/redo",
	Long: `todo is an interactive to-do list manager.

Add tasks with an optional due date and tags, mark them completed or
pending, delete them, and undo/redo any change made during the session.
Tasks live in memory for the duration of the session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if noColor {
			cfg.Display.Color = false
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer logger.Close()

		sessionLog := logger.WithSession(uuid.NewString())
		sessionLog.Info("session started", "history_limit", cfg.History.MaxDepth)

		mgr := manager.NewTaskManager(sessionLog, &manager.Option{
			HistoryLimit: cfg.History.MaxDepth,
		})

		var notifier notify.Notifier = notify.Nop{}
		if cfg.Notify.OnComplete {
			notifier = notify.Desktop{}
		}

		shell := NewShell(cmd.InOrStdin(), cmd.OutOrStdout(), mgr, &ShellOption{
			Color:      cfg.Display.Color,
			DateFormat: cfg.Display.DateFormat,
			Notifier:   notifier,
			Logger:     sessionLog,
		})
		if err := shell.Run(); err != nil {
			sessionLog.Error("session aborted", "error", err)
			return err
		}

		sessionLog.Info("session ended", "tasks", mgr.Len())
		return nil
	},
}

// newLogger は設定に応じたLoggerを作る
// --verbose のときはログ設定に関係なくDEBUGで標準エラーに出す
func newLogger(cmd *cobra.Command) (*logging.Logger, error) {
	if verbose {
		return logging.NewWriterLogger(cmd.ErrOrStderr(), logging.LevelDebug), nil
	}
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(cfg.LogDir(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// Execute はCLIを実行する
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/vibe-todo/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
