//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Send はosascriptでmacOSの通知を送る
func Send(title, message string) error {
	script := fmt.Sprintf(`display notification "%s" with title "%s" sound name "Glass"`, escape(message), escape(title))
	cmd := exec.Command("osascript", "-e", script)
	return cmd.Run()
}

// SendCompleted はタスク完了の通知を送る
func SendCompleted(description string) error {
	return Send("✅ todo: Task Completed", truncate(description, 80))
}

// escape はAppleScriptの文字列リテラル用に \ と " をエスケープする
func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func truncate(s string, max int) string {
	if ansi.StringWidth(s) <= max {
		return s
	}
	return ansi.Truncate(s, max, "...")
}
