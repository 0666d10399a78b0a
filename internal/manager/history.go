package manager

import "github.com/tkc/vibe-todo/internal/domain"

// snapshot はある時点のタスク一覧のディープコピー
type snapshot []domain.Task

func takeSnapshot(tasks []domain.Task) snapshot {
	s := make(snapshot, len(tasks))
	for i := range tasks {
		s[i] = tasks[i].Clone()
	}
	return s
}

// restore はスナップショットから新しいライブ一覧を作る
func (s snapshot) restore() []domain.Task {
	return takeSnapshot(s)
}

// history はundo/redo用のスナップショットのスタック
//
// undo の先頭は常に現在のライブ一覧と等しく、底は初期状態。
// limit > 0 のとき undo は最大 limit+1 件まで保持し、古いものから捨てる。
type history struct {
	undo  []snapshot
	redo  []snapshot
	limit int
}

func newHistory(initial []domain.Task, limit int) *history {
	if limit < 0 {
		limit = 0
	}
	return &history{
		undo:  []snapshot{takeSnapshot(initial)},
		limit: limit,
	}
}

// record は新しい状態を積み、redo履歴を破棄する
func (h *history) record(tasks []domain.Task) (evicted bool) {
	h.undo = append(h.undo, takeSnapshot(tasks))
	h.redo = nil

	if h.limit > 0 && len(h.undo) > h.limit+1 {
		h.undo[0] = nil
		h.undo = h.undo[1:]
		evicted = true
	}
	return evicted
}

func (h *history) canUndo() bool { return len(h.undo) > 1 }
func (h *history) canRedo() bool { return len(h.redo) > 0 }

// stepBack は先頭をredoに移し、一つ前の状態を返す
func (h *history) stepBack() ([]domain.Task, error) {
	if !h.canUndo() {
		return nil, domain.ErrNoPriorState
	}
	last := len(h.undo) - 1
	h.redo = append(h.redo, h.undo[last])
	h.undo[last] = nil
	h.undo = h.undo[:last]
	return h.undo[len(h.undo)-1].restore(), nil
}

// stepForward はredoの先頭をundoに戻し、その状態を返す
func (h *history) stepForward() ([]domain.Task, error) {
	if !h.canRedo() {
		return nil, domain.ErrNoNextState
	}
	last := len(h.redo) - 1
	next := h.redo[last]
	h.redo[last] = nil
	h.redo = h.redo[:last]
	h.undo = append(h.undo, next)
	return next.restore(), nil
}
