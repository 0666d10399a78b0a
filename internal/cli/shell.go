package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/tkc/vibe-todo/internal/domain"
	"github.com/tkc/vibe-todo/internal/logging"
	"github.com/tkc/vibe-todo/internal/manager"
	"github.com/tkc/vibe-todo/internal/notify"
)

// errQuit は入力の終端に達したことを表す
var errQuit = errors.New("quit")

// Shell は対話式のメニューループ
// 入出力だけを扱い、状態の変更はすべてTaskManagerに任せる
type Shell struct {
	in         *bufio.Reader
	out        io.Writer
	mgr        *manager.TaskManager
	style      styles
	notifier   notify.Notifier
	dateFormat string
	log        *logging.Logger
}

// ShellOption はShellの設定
type ShellOption struct {
	Color      bool
	DateFormat string
	Notifier   notify.Notifier
	Logger     *logging.Logger
}

// NewShell は新しいShellを作成する
func NewShell(in io.Reader, out io.Writer, mgr *manager.TaskManager, opt *ShellOption) *Shell {
	if opt == nil {
		opt = &ShellOption{}
	}
	notifier := opt.Notifier
	if notifier == nil {
		notifier = notify.Nop{}
	}
	logger := opt.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	return &Shell{
		in:         bufio.NewReader(in),
		out:        out,
		mgr:        mgr,
		style:      newStyles(out, opt.Color),
		notifier:   notifier,
		dateFormat: opt.DateFormat,
		log:        logger.WithComponent("shell"),
	}
}

// Run は終了が選ばれるか入力が尽きるまでメニューを繰り返す
func (s *Shell) Run() error {
	for {
		s.printMenu()
		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return s.quit(err)
		}

		switch choice {
		case "1":
			err = s.addTask()
		case "2":
			err = s.changeTask("mark as completed", "marked as completed", s.mgr.MarkCompleted, s.notifyCompleted)
		case "3":
			err = s.changeTask("mark as pending", "marked as pending", s.mgr.MarkPending, nil)
		case "4":
			err = s.changeTask("delete", "deleted", s.mgr.DeleteTask, nil)
		case "5":
			s.undo()
		case "6":
			s.redo()
		case "7":
			err = s.viewTasks()
		case "0":
			s.println("Exiting the program. Goodbye!")
			return nil
		default:
			s.println(s.style.warn.Render("Invalid choice! Please enter a number between 0 and 7."))
		}

		if err != nil {
			return s.quit(err)
		}
	}
}

func (s *Shell) quit(err error) error {
	if errors.Is(err, errQuit) {
		s.println()
		s.println("Exiting the program. Goodbye!")
		return nil
	}
	return err
}

func (s *Shell) printMenu() {
	s.println()
	s.println(s.style.title.Render("===== TO-DO LIST MANAGER ====="))
	s.println("1. Add Task")
	s.println("2. Mark Task as Completed")
	s.println("3. Mark Task as Pending")
	s.println("4. Delete Task")
	s.println("5. Undo")
	s.println("6. Redo")
	s.println("7. View Tasks")
	s.println("0. Exit")
	s.println(s.style.muted.Render(fmt.Sprintf("tasks: %d  undo: %d  redo: %d",
		s.mgr.Len(), s.mgr.UndoDepth()-1, s.mgr.RedoDepth())))
	s.println("==============================")
}

func (s *Shell) addTask() error {
	var description string
	for description == "" {
		var err error
		description, err = s.prompt("Enter task description: ")
		if err != nil {
			return err
		}
		if description == "" {
			s.println(s.style.warn.Render("Description cannot be empty."))
		}
	}

	dueDate, err := s.prompt("Enter due date (or leave empty): ")
	if err != nil {
		return err
	}

	rawTags, err := s.prompt("Enter tags separated by spaces (or leave empty): ")
	if err != nil {
		return err
	}

	view := s.mgr.AddNew(description, dueDate, parseTags(rawTags))
	s.log.Info("task added", "task_id", view.ID)
	s.println(s.style.success.Render("Task added successfully!"))
	return nil
}

// changeTask は番号を選ばせてタスクを操作する
// after は成功時に説明文を受け取って呼ばれる（nil可）
func (s *Shell) changeTask(action, done string, apply func(int) (string, error), after func(string)) error {
	if s.mgr.Len() == 0 {
		s.println(s.style.warn.Render(errorMessage(domain.ErrEmptyList, action)))
		return nil
	}

	s.printNumbered()
	raw, err := s.prompt(fmt.Sprintf("Enter the task number to %s: ", action))
	if err != nil {
		return err
	}

	index, convErr := strconv.Atoi(raw)
	if convErr != nil {
		s.println(s.style.warn.Render(fmt.Sprintf("Invalid task number %q. No task %s.", raw, done)))
		return nil
	}

	description, err := apply(index)
	if err != nil {
		s.println(s.style.warn.Render(errorMessage(err, action)))
		return nil
	}

	s.log.Info("task changed", "action", action, "index", index)
	s.println(s.style.success.Render(fmt.Sprintf("Task '%s' %s successfully!", description, done)))

	if after != nil {
		after(description)
	}
	return nil
}

func (s *Shell) notifyCompleted(description string) {
	if err := s.notifier.Completed(description); err != nil {
		s.log.Warn("failed to send notification", "error", err)
	}
}

func (s *Shell) undo() {
	if err := s.mgr.Undo(); err != nil {
		s.println(s.style.warn.Render(errorMessage(err, "undo")))
		return
	}
	s.println(s.style.success.Render("Undo successful!"))
}

func (s *Shell) redo() {
	if err := s.mgr.Redo(); err != nil {
		s.println(s.style.warn.Render(errorMessage(err, "redo")))
		return
	}
	s.println(s.style.success.Render("Redo successful!"))
}

func (s *Shell) viewTasks() error {
	raw, err := s.prompt("Select filter option:\n1. Show all\n2. Show completed\n3. Show pending\nEnter your choice: ")
	if err != nil {
		return err
	}

	filter, parseErr := domain.ParseFilter(raw)
	if parseErr != nil {
		s.println(s.style.warn.Render("Invalid choice!"))
		return nil
	}

	s.println(s.style.title.Render("Task List:"))
	if s.mgr.Len() == 0 {
		s.println("EMPTY")
		return nil
	}

	count := 0
	for v := range s.mgr.ViewTasks(filter) {
		s.println(s.style.taskLine(v, s.dateFormat))
		count++
	}
	if count == 0 {
		s.println(s.style.muted.Render(fmt.Sprintf("No %s tasks.", filter)))
	}
	return nil
}

func (s *Shell) printNumbered() {
	for i, description := range s.mgr.ListNumbered() {
		s.println(fmt.Sprintf("%d. %s", i, truncate(description, 60)))
	}
}

// prompt はプロンプトを表示して1行読む。入力が尽きたら errQuit を返す
// 行の長さに上限はない
func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		// 改行なしで終わる最後の行はそのまま使う
		if line == "" {
			return "", errQuit
		}
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// errorMessage はTaskManagerのエラーを利用者向けの文に変換する
func errorMessage(err error, action string) string {
	var indexErr *domain.IndexError
	switch {
	case errors.Is(err, domain.ErrEmptyList):
		return fmt.Sprintf("No tasks to %s. Task list is empty.", action)
	case errors.As(err, &indexErr):
		return fmt.Sprintf("Invalid task number %d (choose 1-%d). Nothing to %s.", indexErr.Index, indexErr.Count, action)
	case errors.Is(err, domain.ErrNoPriorState):
		return "Undo not possible. No previous state."
	case errors.Is(err, domain.ErrNoNextState):
		return "Redo not possible. No next state."
	default:
		return fmt.Sprintf("Failed to %s: %v", action, err)
	}
}

// parseTags は空白またはカンマ区切りのタグを分解する
func parseTags(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
