package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task はTo-Doリストの1件のタスクを表す
//
// completedAt は completed が true のときだけ値を持つ。
// フィールドは非公開にしておき、状態遷移はメソッド経由でのみ行う。
type Task struct {
	id          string
	description string
	completed   bool
	dueDate     string     // 空文字は未設定
	tags        []string   // 追加順を保持
	completedAt *time.Time // 完了日時
}

// NewTask は説明文だけを持つ未完了のタスクを作成する
func NewTask(description string) Task {
	return Task{
		id:          uuid.NewString(),
		description: description,
	}
}

// ID はタスクの識別子を返す（ログの突き合わせ用）
func (t *Task) ID() string { return t.id }

// Description はタスクの説明文を返す
func (t *Task) Description() string { return t.description }

// IsCompleted はタスクが完了済みかどうかを返す
func (t *Task) IsCompleted() bool { return t.completed }

// DueDate は期限を返す。未設定なら空文字
func (t *Task) DueDate() string { return t.dueDate }

// Tags はタグのコピーを返す
func (t *Task) Tags() []string {
	if len(t.tags) == 0 {
		return []string{}
	}
	out := make([]string, len(t.tags))
	copy(out, t.tags)
	return out
}

// CompletionDate は完了日時を返す。未完了なら ok は false
func (t *Task) CompletionDate() (at time.Time, ok bool) {
	if t.completedAt == nil {
		return time.Time{}, false
	}
	return *t.completedAt, true
}

// MarkCompleted はタスクを完了にし、完了日時を記録する
func (t *Task) MarkCompleted(at time.Time) {
	t.completed = true
	t.completedAt = &at
}

// MarkPending はタスクを未完了に戻し、完了日時を消す
func (t *Task) MarkPending() {
	t.completed = false
	t.completedAt = nil
}

// SetDueDate は期限を設定する
func (t *Task) SetDueDate(date string) {
	t.dueDate = date
}

// AddTag はタグを末尾に追加する
func (t *Task) AddTag(tag string) {
	t.tags = append(t.tags, tag)
}

// Clone はタスクのディープコピーを返す
func (t *Task) Clone() Task {
	c := *t
	if t.tags != nil {
		c.tags = make([]string, len(t.tags))
		copy(c.tags, t.tags)
	}
	if t.completedAt != nil {
		at := *t.completedAt
		c.completedAt = &at
	}
	return c
}

// View は表示用のTaskViewを返す
func (t *Task) View() TaskView {
	v := TaskView{
		ID:          t.id,
		Description: t.description,
		Completed:   t.completed,
		DueDate:     t.dueDate,
		Tags:        t.Tags(),
	}
	if t.completedAt != nil {
		at := *t.completedAt
		v.CompletionDate = &at
	}
	return v
}

// Filter はタスク一覧の表示条件
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

// ParseFilter は文字列からFilterを返す。メニューの番号 (1-3) も受け付ける
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "1", string(FilterAll):
		return FilterAll, nil
	case "2", string(FilterCompleted), "done":
		return FilterCompleted, nil
	case "3", string(FilterPending), "todo":
		return FilterPending, nil
	default:
		return "", fmt.Errorf("unknown filter: %q (want all, completed or pending)", s)
	}
}

// Match はタスクがフィルタ条件に合うかどうかを返す
func (f Filter) Match(t *Task) bool {
	switch f {
	case FilterCompleted:
		return t.completed
	case FilterPending:
		return !t.completed
	default:
		return true
	}
}
