package domain

import (
	"errors"
	"fmt"
)

// タスク操作のエラー。いずれも状態を変更せずに返される
var (
	ErrEmptyList       = errors.New("task list is empty")
	ErrIndexOutOfRange = errors.New("task number out of range")
	ErrNoPriorState    = errors.New("no previous state")
	ErrNoNextState     = errors.New("no next state")
)

// IndexError は範囲外のタスク番号を表す
type IndexError struct {
	Index int // 指定された番号 (1始まり)
	Count int // その時点のタスク数
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %d (valid: 1-%d)", ErrIndexOutOfRange, e.Index, e.Count)
}

// Unwrap は errors.Is(err, ErrIndexOutOfRange) を成立させる
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckIndex は1始まりの番号が [1, count] に収まるかを検証する
func CheckIndex(index, count int) error {
	if count == 0 {
		return ErrEmptyList
	}
	if index < 1 || index > count {
		return &IndexError{Index: index, Count: count}
	}
	return nil
}
