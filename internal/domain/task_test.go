package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTask_MarkCompletedAndPending(t *testing.T) {
	task := NewTask("Buy milk")

	if task.IsCompleted() {
		t.Fatal("new task should be pending")
	}
	if _, ok := task.CompletionDate(); ok {
		t.Fatal("new task should have no completion date")
	}

	at := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	task.MarkCompleted(at)

	if !task.IsCompleted() {
		t.Error("IsCompleted() = false after MarkCompleted")
	}
	got, ok := task.CompletionDate()
	if !ok {
		t.Fatal("CompletionDate() not set after MarkCompleted")
	}
	if !got.Equal(at) {
		t.Errorf("CompletionDate() = %v, want %v", got, at)
	}

	task.MarkPending()

	if task.IsCompleted() {
		t.Error("IsCompleted() = true after MarkPending")
	}
	if _, ok := task.CompletionDate(); ok {
		t.Error("CompletionDate() still set after MarkPending")
	}
}

func TestTask_Tags(t *testing.T) {
	task := NewTask("Walk dog")
	if tags := task.Tags(); len(tags) != 0 {
		t.Fatalf("Tags() = %v, want empty", tags)
	}

	task.AddTag("chores")
	task.AddTag("outside")

	tags := task.Tags()
	if strings.Join(tags, ",") != "chores,outside" {
		t.Fatalf("Tags() = %v, want [chores outside]", tags)
	}

	// 返されたスライスを書き換えてもタスクには影響しない
	tags[0] = "changed"
	if task.Tags()[0] != "chores" {
		t.Error("Tags() returned a slice aliased to the task")
	}
}

func TestTask_Clone(t *testing.T) {
	orig := NewTask("Walk dog")
	orig.AddTag("chores")
	orig.MarkCompleted(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	c := orig.Clone()
	if c.ID() != orig.ID() {
		t.Errorf("Clone().ID() = %q, want %q", c.ID(), orig.ID())
	}

	c.AddTag("extra")
	c.MarkPending()
	c.SetDueDate("2030-01-01")

	if len(orig.Tags()) != 1 {
		t.Errorf("original tags changed: %v", orig.Tags())
	}
	if !orig.IsCompleted() {
		t.Error("original completion changed")
	}
	if _, ok := orig.CompletionDate(); !ok {
		t.Error("original completion date cleared")
	}
	if orig.DueDate() != "" {
		t.Errorf("original due date = %q, want empty", orig.DueDate())
	}
}

func TestTaskBuilder(t *testing.T) {
	b := NewTaskBuilder("Walk dog").SetDueDate("2024-01-01").AddTag("chores")
	task := b.Build()

	if task.Description() != "Walk dog" {
		t.Errorf("Description() = %q", task.Description())
	}
	if task.DueDate() != "2024-01-01" {
		t.Errorf("DueDate() = %q", task.DueDate())
	}
	if strings.Join(task.Tags(), ",") != "chores" {
		t.Errorf("Tags() = %v", task.Tags())
	}
	if task.IsCompleted() {
		t.Error("built task should be pending")
	}
	if task.ID() == "" {
		t.Error("built task should have an ID")
	}

	// ビルド後にビルダーを使っても既存のタスクは変わらない
	b.AddTag("later")
	if len(task.Tags()) != 1 {
		t.Errorf("built task shares state with builder: %v", task.Tags())
	}
}

func TestTaskBuilder_AddTagsSkipsEmpty(t *testing.T) {
	task := NewTaskBuilder("x").AddTags("a", "", "b").Build()
	if got := strings.Join(task.Tags(), ","); got != "a,b" {
		t.Errorf("Tags() = %q, want %q", got, "a,b")
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"1", FilterAll, false},
		{"all", FilterAll, false},
		{"2", FilterCompleted, false},
		{"completed", FilterCompleted, false},
		{"3", FilterPending, false},
		{"pending", FilterPending, false},
		{"4", "", true},
		{"everything", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilter(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFilter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilter_Match(t *testing.T) {
	done := NewTask("done")
	done.MarkCompleted(time.Now())
	todo := NewTask("todo")

	tests := []struct {
		filter Filter
		done   bool
		todo   bool
	}{
		{FilterAll, true, true},
		{FilterCompleted, true, false},
		{FilterPending, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			if got := tt.filter.Match(&done); got != tt.done {
				t.Errorf("Match(completed) = %v, want %v", got, tt.done)
			}
			if got := tt.filter.Match(&todo); got != tt.todo {
				t.Errorf("Match(pending) = %v, want %v", got, tt.todo)
			}
		})
	}
}

func TestTaskView_Format(t *testing.T) {
	at := time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		view TaskView
		want string
	}{
		{
			name: "pending without extras",
			view: TaskView{Description: "Buy milk"},
			want: "Buy milk - Pending",
		},
		{
			name: "pending with due date and tags",
			view: TaskView{Description: "Walk dog", DueDate: "2024-01-01", Tags: []string{"chores", "dog"}},
			want: "Walk dog - Pending, Due: 2024-01-01, Tags: chores dog",
		},
		{
			name: "completed",
			view: TaskView{Description: "Buy milk", Completed: true, CompletionDate: &at},
			want: "Buy milk - Completed, Completed On: 2024-01-02 10:30:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.view.Format(""); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckIndex(t *testing.T) {
	if err := CheckIndex(1, 0); !errors.Is(err, ErrEmptyList) {
		t.Errorf("CheckIndex(1, 0) = %v, want ErrEmptyList", err)
	}
	if err := CheckIndex(2, 2); err != nil {
		t.Errorf("CheckIndex(2, 2) = %v, want nil", err)
	}

	for _, idx := range []int{0, -1, 3} {
		err := CheckIndex(idx, 2)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("CheckIndex(%d, 2) = %v, want ErrIndexOutOfRange", idx, err)
		}
		var ie *IndexError
		if !errors.As(err, &ie) {
			t.Fatalf("CheckIndex(%d, 2) is not *IndexError", idx)
		}
		if ie.Index != idx || ie.Count != 2 {
			t.Errorf("IndexError = %+v", ie)
		}
	}
}
