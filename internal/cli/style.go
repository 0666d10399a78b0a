package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/tkc/vibe-todo/internal/domain"
)

// styles はシェル出力のスタイル
// 出力先ごとのRendererから作るので、端末でなければ装飾は付かない
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
	done    lipgloss.Style
	pending lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#61AFEF")),
		success: r.NewStyle().Foreground(lipgloss.Color("#98C379")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#7F848E")),
		done:    r.NewStyle().Foreground(lipgloss.Color("#98C379")),
		pending: r.NewStyle().Foreground(lipgloss.Color("#E06C75")),
	}
}

func (s styles) statusIcon(completed bool) string {
	if completed {
		return s.done.Render("●")
	}
	return s.pending.Render("○")
}

func (s styles) taskLine(v domain.TaskView, layout string) string {
	return s.statusIcon(v.Completed) + " " + v.Format(layout)
}

// truncate は表示幅が max を超える文字列を "..." 付きで切り詰める
// 幅は端末のセル数で数えるので、全角文字は2として扱う
func truncate(s string, max int) string {
	if max <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	return ansi.Truncate(s, max, "...")
}
