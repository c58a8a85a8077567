package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/fictions/pkg/app/styles"
	"github.com/kerbaras/fictions/pkg/services"
	"github.com/mattn/go-runewidth"
)

// ExportTracker summarizes the progress updates of one export.
type ExportTracker struct {
	total   int
	done    int
	current string
	failed  error
	width   int
}

func NewExportTracker(width int) *ExportTracker {
	return &ExportTracker{width: width}
}

func (p *ExportTracker) Update(progress services.ExportProgress) {
	p.total = progress.Total
	switch progress.Status {
	case "fetching":
		p.current = progress.Title
	case "done":
		p.done++
	case "error":
		p.failed = progress.Error
		p.current = progress.Title
	}
}

func (p *ExportTracker) Done() int     { return p.done }
func (p *ExportTracker) Failed() error { return p.failed }

// View renders a single status line: bar, counter and current chapter.
func (p *ExportTracker) View() string {
	if p.total == 0 {
		return styles.MutedStyle.Render("Fetching fiction...")
	}

	counter := fmt.Sprintf(" %d/%d ", p.done, p.total)
	barWidth := max(10, p.width/3)
	line := renderProgressBar(p.done, p.total, barWidth) + counter

	if p.failed != nil {
		return line + styles.StatusError.Render(fmt.Sprintf("Error: %s: %s", p.current, p.failed))
	}
	rest := max(0, p.width-barWidth-len(counter))
	return line + styles.MutedStyle.Render(runewidth.Truncate(p.current, rest, "..."))
}

func renderProgressBar(current, total, width int) string {
	if total == 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return styles.ProgressBarStyle.Render(bar)
}
