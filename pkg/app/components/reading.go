package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/fictions/pkg/app/styles"
	"github.com/kerbaras/fictions/pkg/data"
	"github.com/mattn/go-runewidth"
)

// ReadingPane holds the open chapter and the paragraph shown at the top.
type ReadingPane struct {
	chapter *data.Chapter
	index   int
}

func NewReadingPane() *ReadingPane {
	return &ReadingPane{}
}

// Open replaces the chapter and resets the cursor to its first paragraph.
func (r *ReadingPane) Open(chapter *data.Chapter) {
	r.chapter = chapter
	r.index = 0
}

func (r *ReadingPane) Chapter() *data.Chapter { return r.chapter }
func (r *ReadingPane) Index() int             { return r.index }

func (r *ReadingPane) paragraphs() []string {
	if r.chapter == nil {
		return nil
	}
	return r.chapter.Paragraphs
}

// Scroll moves the cursor by delta paragraphs, clamped to the chapter.
func (r *ReadingPane) Scroll(delta int) {
	n := len(r.paragraphs())
	if n == 0 {
		r.index = 0
		return
	}
	r.index = max(0, min(n-1, r.index+delta))
}

func (r *ReadingPane) First() { r.index = 0 }

func (r *ReadingPane) Last() {
	r.index = max(0, len(r.paragraphs())-1)
}

// Wrap lays out paragraphs from the cursor onwards into at most height lines
// of width cells. Paragraphs are separated by a blank line. A word wider
// than width gets a line of its own and overflows.
func (r *ReadingPane) Wrap(width, height int) []string {
	paragraphs := r.paragraphs()
	if height < 1 || r.index >= len(paragraphs) {
		return nil
	}
	width = max(1, width)

	lines := make([]string, 0, min(height, 256))
	for i := r.index; i < len(paragraphs) && len(lines) < height; i++ {
		if i > r.index {
			lines = append(lines, "")
		}
		for _, line := range WrapParagraph(paragraphs[i], width) {
			if len(lines) >= height {
				break
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// WrapParagraph greedily packs the words of p into lines of width cells.
func WrapParagraph(p string, width int) []string {
	words := strings.Fields(p)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range words {
		w := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	return append(lines, line.String())
}

// Render draws the chapter title and the wrapped text into width x height.
func (r *ReadingPane) Render(width, height int) string {
	if r.chapter == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			styles.MutedStyle.Render("Select a chapter and press enter"))
	}

	title := styles.TitleStyle.Render(runewidth.Truncate(r.chapter.Title, width, "..."))
	bodyHeight := height - lipgloss.Height(title) - 1
	body := strings.Join(r.Wrap(width, bodyHeight), "\n")
	return lipgloss.JoinVertical(lipgloss.Left, title, styles.TextStyle.Render(body))
}
