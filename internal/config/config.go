package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/tkc/vibe-todo/internal/domain"
	"github.com/tkc/vibe-todo/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config はアプリケーション設定
type Config struct {
	History HistoryConfig `mapstructure:"history" yaml:"history"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Notify  NotifyConfig  `mapstructure:"notify" yaml:"notify"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// HistoryConfig はundo/redo履歴の設定
type HistoryConfig struct {
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth"` // 0は無制限
}

// DisplayConfig は表示の設定
type DisplayConfig struct {
	DateFormat string `mapstructure:"date_format" yaml:"date_format"` // Goのtime layout
	Color      bool   `mapstructure:"color" yaml:"color"`
}

// NotifyConfig は通知の設定
type NotifyConfig struct {
	OnComplete bool `mapstructure:"on_complete" yaml:"on_complete"` // タスク完了時にデスクトップ通知する
}

// LoggingConfig はログの設定
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Level   string `mapstructure:"level" yaml:"level"`
	Dir     string `mapstructure:"dir" yaml:"dir"` // 空なら ConfigDir()/logs
}

// configDirName は設定ディレクトリ名
const configDirName = "vibe-todo"

// configFileName は設定ファイル名
const configFileName = "config.yaml"

// EnvPrefix は環境変数のプレフィックス (例: VIBE_TODO_HISTORY_MAX_DEPTH)
const EnvPrefix = "VIBE_TODO"

// Default はデフォルト設定を返す
func Default() *Config {
	return &Config{
		History: HistoryConfig{MaxDepth: 0},
		Display: DisplayConfig{
			DateFormat: domain.DefaultDateFormat,
			Color:      true,
		},
		Notify: NotifyConfig{OnComplete: false},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   logging.LevelInfo,
		},
	}
}

// SetDefaults はviperにデフォルト値を登録する
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("history.max_depth", d.History.MaxDepth)
	v.SetDefault("display.date_format", d.Display.DateFormat)
	v.SetDefault("display.color", d.Display.Color)
	v.SetDefault("notify.on_complete", d.Notify.OnComplete)
	v.SetDefault("logging.enabled", d.Logging.Enabled)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.dir", d.Logging.Dir)
}

// Load は設定を読み込む
//
// 優先順位は 環境変数 > 設定ファイル > デフォルト。
// path が空なら ConfigDir() の config.yaml を探し、無ければデフォルトのまま返す。
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save は設定をYAMLで保存する。path が空なら DefaultPath() に書き込む
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	// ディレクトリ作成
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate は設定が有効かどうかを検証する
func (c *Config) Validate() error {
	if c.History.MaxDepth < 0 {
		return fmt.Errorf("history.max_depth must be >= 0, got %d", c.History.MaxDepth)
	}
	if strings.TrimSpace(c.Display.DateFormat) == "" {
		return fmt.Errorf("display.date_format must not be empty")
	}
	if !logging.IsValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of DEBUG, INFO, WARN, ERROR, got %q", c.Logging.Level)
	}
	return nil
}

// LogDir はログの出力先ディレクトリを返す
func (c *Config) LogDir() string {
	if c.Logging.Dir != "" {
		return c.Logging.Dir
	}
	return filepath.Join(ConfigDir(), "logs")
}

// YAML は設定をYAML文字列で返す
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigDir は設定ディレクトリのパスを返す
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + configDirName
	}
	return filepath.Join(home, ".config", configDirName)
}

// DefaultPath は設定ファイルのデフォルトのパスを返す
func DefaultPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}
