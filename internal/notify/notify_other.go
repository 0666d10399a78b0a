//go:build !darwin

package notify

// Send はdarwin以外では何もしない
func Send(title, message string) error {
	return nil
}

// SendCompleted はdarwin以外では何もしない
func SendCompleted(description string) error {
	return nil
}
