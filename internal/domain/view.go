package domain

import (
	"strings"
	"time"
)

// DefaultDateFormat は完了日時の既定の表示形式
const DefaultDateFormat = "2006-01-02 15:04:05"

// TaskView はシェルに渡す表示用のタスク情報
type TaskView struct {
	ID             string
	Description    string
	Completed      bool
	DueDate        string
	CompletionDate *time.Time
	Tags           []string
}

// StatusLabel は完了状態のラベルを返す
func (v TaskView) StatusLabel() string {
	if v.Completed {
		return "Completed"
	}
	return "Pending"
}

// Format は1行の表示文字列を返す
//
//	Buy milk - Completed, Due: 2024-01-01, Completed On: 2024-01-02 10:00:00, Tags: home chores
func (v TaskView) Format(layout string) string {
	if layout == "" {
		layout = DefaultDateFormat
	}

	var b strings.Builder
	b.WriteString(v.Description)
	b.WriteString(" - ")
	b.WriteString(v.StatusLabel())
	if v.DueDate != "" {
		b.WriteString(", Due: ")
		b.WriteString(v.DueDate)
	}
	if v.Completed && v.CompletionDate != nil {
		b.WriteString(", Completed On: ")
		b.WriteString(v.CompletionDate.Format(layout))
	}
	if len(v.Tags) > 0 {
		b.WriteString(", Tags: ")
		b.WriteString(strings.Join(v.Tags, " "))
	}
	return b.String()
}

func (v TaskView) String() string {
	return v.Format(DefaultDateFormat)
}
