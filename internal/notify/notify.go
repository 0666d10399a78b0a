// Package notify はデスクトップ通知を送る。darwin以外では何もしない
package notify

// Notifier はタスク完了を通知する
type Notifier interface {
	Completed(description string) error
}

// Desktop はOSのデスクトップ通知を使うNotifier
type Desktop struct{}

// Completed はタスク完了の通知を送る
func (Desktop) Completed(description string) error {
	return SendCompleted(description)
}

// Nop は何もしないNotifier
type Nop struct{}

func (Nop) Completed(string) error { return nil }
