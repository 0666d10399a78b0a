package domain

// TaskBuilder はタスクをメソッドチェーンで組み立てる
//
//	task := domain.NewTaskBuilder("Walk dog").
//		SetDueDate("2024-01-01").
//		AddTag("chores").
//		Build()
type TaskBuilder struct {
	task Task
}

// NewTaskBuilder は説明文を指定してTaskBuilderを作成する
func NewTaskBuilder(description string) *TaskBuilder {
	return &TaskBuilder{task: NewTask(description)}
}

// SetDueDate は期限を設定する
func (b *TaskBuilder) SetDueDate(date string) *TaskBuilder {
	b.task.SetDueDate(date)
	return b
}

// AddTag はタグを追加する
func (b *TaskBuilder) AddTag(tag string) *TaskBuilder {
	b.task.AddTag(tag)
	return b
}

// AddTags は複数のタグをまとめて追加する。空文字は無視する
func (b *TaskBuilder) AddTags(tags ...string) *TaskBuilder {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		b.task.AddTag(tag)
	}
	return b
}

// Build はタスクを返す
// 戻り値はビルダー内部のタスクのコピーなので、その後ビルダーを使っても影響しない
func (b *TaskBuilder) Build() Task {
	return b.task.Clone()
}
