// Package manager はタスク一覧とundo/redo履歴を管理する
//
// TaskManager はタスク一覧を変更できる唯一の場所で、変更のたびに一覧全体の
// スナップショットを履歴に積む。新しい操作をするとredo履歴は捨てられる。
// 単一の呼び出し元から順番に使う前提で、排他制御は持たない。
package manager

import (
	"iter"
	"time"

	"github.com/tkc/vibe-todo/internal/domain"
	"github.com/tkc/vibe-todo/internal/logging"
)

// Option はTaskManagerの設定
type Option struct {
	HistoryLimit int              // 保持するundo履歴の数。0は無制限
	Now          func() time.Time // 完了日時に使う時計
}

// TaskManager はタスク一覧と履歴を持つ
type TaskManager struct {
	tasks   []domain.Task
	history *history
	now     func() time.Time
	log     *logging.Logger
}

// NewTaskManager は空のTaskManagerを作成する
func NewTaskManager(logger *logging.Logger, opt *Option) *TaskManager {
	if opt == nil {
		opt = &Option{}
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	now := opt.Now
	if now == nil {
		now = time.Now
	}

	tasks := []domain.Task{}
	return &TaskManager{
		tasks:   tasks,
		history: newHistory(tasks, opt.HistoryLimit),
		now:     now,
		log:     logger.WithComponent("manager"),
	}
}

// AddTask はタスクを末尾に追加する
func (m *TaskManager) AddTask(task domain.Task) domain.TaskView {
	task = task.Clone()
	m.tasks = append(m.tasks, task)
	m.commit("task added", "task_id", task.ID())
	return task.View()
}

// AddNew は説明文・期限・タグからタスクを作って追加する
func (m *TaskManager) AddNew(description, dueDate string, tags []string) domain.TaskView {
	task := domain.NewTaskBuilder(description).
		SetDueDate(dueDate).
		AddTags(tags...).
		Build()
	return m.AddTask(task)
}

// MarkCompleted は index 番目 (1始まり) のタスクを完了にし、その説明文を返す
func (m *TaskManager) MarkCompleted(index int) (string, error) {
	task, err := m.at(index, "mark completed")
	if err != nil {
		return "", err
	}
	task.MarkCompleted(m.now())
	m.commit("task completed", "task_id", task.ID(), "index", index)
	return task.Description(), nil
}

// MarkPending は index 番目 (1始まり) のタスクを未完了に戻し、その説明文を返す
func (m *TaskManager) MarkPending(index int) (string, error) {
	task, err := m.at(index, "mark pending")
	if err != nil {
		return "", err
	}
	task.MarkPending()
	m.commit("task reopened", "task_id", task.ID(), "index", index)
	return task.Description(), nil
}

// DeleteTask は index 番目 (1始まり) のタスクを削除し、その説明文を返す
func (m *TaskManager) DeleteTask(index int) (string, error) {
	task, err := m.at(index, "delete")
	if err != nil {
		return "", err
	}
	description, id := task.Description(), task.ID()

	i := index - 1
	m.tasks = append(m.tasks[:i:i], m.tasks[i+1:]...)
	m.commit("task deleted", "task_id", id, "index", index)
	return description, nil
}

// Undo は一つ前の状態に戻す
func (m *TaskManager) Undo() error {
	tasks, err := m.history.stepBack()
	if err != nil {
		m.log.Warn("undo rejected", "error", err)
		return err
	}
	m.tasks = tasks
	m.log.Debug("undo", m.depthAttrs()...)
	return nil
}

// Redo は取り消した操作をやり直す
func (m *TaskManager) Redo() error {
	tasks, err := m.history.stepForward()
	if err != nil {
		m.log.Warn("redo rejected", "error", err)
		return err
	}
	m.tasks = tasks
	m.log.Debug("redo", m.depthAttrs()...)
	return nil
}

// ViewTasks はフィルタに合うタスクを一覧の順に返す
//
// 返すシーケンスは呼び出すたびにその時点の一覧を最初から辿る。
// 一覧を変更しない。
func (m *TaskManager) ViewTasks(filter domain.Filter) iter.Seq[domain.TaskView] {
	return func(yield func(domain.TaskView) bool) {
		for i := range m.tasks {
			if !filter.Match(&m.tasks[i]) {
				continue
			}
			if !yield(m.tasks[i].View()) {
				return
			}
		}
	}
}

// ListNumbered は (番号, 説明文) の組を返す。番号は1始まりで毎回振り直す
func (m *TaskManager) ListNumbered() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := range m.tasks {
			if !yield(i+1, m.tasks[i].Description()) {
				return
			}
		}
	}
}

// Len は現在のタスク数を返す
func (m *TaskManager) Len() int { return len(m.tasks) }

// UndoDepth はundoスタックの深さを返す（初期状態を含む）
func (m *TaskManager) UndoDepth() int { return len(m.history.undo) }

// RedoDepth はredoスタックの深さを返す
func (m *TaskManager) RedoDepth() int { return len(m.history.redo) }

// CanUndo は戻せる状態があるかどうかを返す
func (m *TaskManager) CanUndo() bool { return m.history.canUndo() }

// CanRedo はやり直せる状態があるかどうかを返す
func (m *TaskManager) CanRedo() bool { return m.history.canRedo() }

// at は1始まりの番号でライブ一覧のタスクを返す
func (m *TaskManager) at(index int, op string) (*domain.Task, error) {
	if err := domain.CheckIndex(index, len(m.tasks)); err != nil {
		m.log.Warn(op+" rejected", "index", index, "count", len(m.tasks), "error", err)
		return nil, err
	}
	return &m.tasks[index-1], nil
}

// commit は現在の一覧を履歴に積む
func (m *TaskManager) commit(msg string, args ...any) {
	if m.history.record(m.tasks) {
		m.log.Debug("oldest snapshot evicted", "limit", m.history.limit)
	}
	m.log.Debug(msg, append(args, m.depthAttrs()...)...)
}

func (m *TaskManager) depthAttrs() []any {
	return []any{"undo_depth", len(m.history.undo), "redo_depth", len(m.history.redo)}
}
