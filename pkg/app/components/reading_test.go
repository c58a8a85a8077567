package components

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/kerbaras/fictions/pkg/data"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func paneWith(paragraphs ...string) *ReadingPane {
	pane := NewReadingPane()
	pane.Open(&data.Chapter{Title: "Chapter", Paragraphs: paragraphs})
	return pane
}

func TestReadingPane_Scroll(t *testing.T) {
	pane := paneWith("a", "b", "c")

	pane.Scroll(-1)
	assert.Equal(t, 0, pane.Index())

	pane.Scroll(2)
	assert.Equal(t, 2, pane.Index())

	pane.Scroll(5)
	assert.Equal(t, 2, pane.Index())

	pane.First()
	assert.Equal(t, 0, pane.Index())

	pane.Last()
	assert.Equal(t, 2, pane.Index())
}

func TestReadingPane_OpenResetsCursor(t *testing.T) {
	pane := paneWith("a", "b", "c")
	pane.Scroll(2)

	pane.Open(&data.Chapter{Paragraphs: []string{"x"}})
	assert.Equal(t, 0, pane.Index())
}

func TestReadingPane_NoChapter(t *testing.T) {
	pane := NewReadingPane()
	pane.Scroll(3)
	pane.Last()

	assert.Equal(t, 0, pane.Index())
	assert.Empty(t, pane.Wrap(10, 10))
	assert.Contains(t, pane.Render(40, 5), "Select a chapter")
}

func TestReadingPane_Wrap(t *testing.T) {
	tests := []struct {
		name   string
		paras  []string
		scroll int
		width  int
		height int
		want   []string
	}{
		{
			name:   "greedy packing",
			paras:  []string{"the quick brown fox jumps"},
			width:  10,
			height: 10,
			want:   []string{"the quick", "brown fox", "jumps"},
		},
		{
			name:   "exact fit",
			paras:  []string{"abcd efgh"},
			width:  9,
			height: 10,
			want:   []string{"abcd efgh"},
		},
		{
			name:   "blank line between paragraphs",
			paras:  []string{"one", "two"},
			width:  10,
			height: 10,
			want:   []string{"one", "", "two"},
		},
		{
			name:   "height cuts output",
			paras:  []string{"one", "two", "three"},
			width:  10,
			height: 2,
			want:   []string{"one", ""},
		},
		{
			name:   "starts at cursor",
			paras:  []string{"one", "two", "three"},
			scroll: 1,
			width:  10,
			height: 10,
			want:   []string{"two", "", "three"},
		},
		{
			name:   "overlong word alone",
			paras:  []string{"a supercalifragilistic b"},
			width:  5,
			height: 10,
			want:   []string{"a", "supercalifragilistic", "b"},
		},
		{
			name:   "whitespace collapses",
			paras:  []string{"  spaced \t out\nwords  "},
			width:  40,
			height: 10,
			want:   []string{"spaced out words"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pane := paneWith(tt.paras...)
			pane.Scroll(tt.scroll)
			assert.Equal(t, tt.want, pane.Wrap(tt.width, tt.height))
		})
	}
}

func TestReadingPane_WrapWideRunes(t *testing.T) {
	pane := paneWith("日本語 の 文章")
	for _, line := range pane.Wrap(6, 10) {
		if runewidth.StringWidth(line) > 6 {
			t.Errorf("line %q is %d cells wide", line, runewidth.StringWidth(line))
		}
	}
}

func TestReadingPane_WrapNeverExceedsWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	letters := "abcdefghij"

	for trial := 0; trial < 300; trial++ {
		var paras []string
		for p := 0; p < 1+rng.Intn(4); p++ {
			var words []string
			for w := 0; w < rng.Intn(20); w++ {
				n := 1 + rng.Intn(14)
				var b strings.Builder
				for i := 0; i < n; i++ {
					b.WriteByte(letters[rng.Intn(len(letters))])
				}
				words = append(words, b.String())
			}
			paras = append(paras, strings.Join(words, " "))
		}
		width := 1 + rng.Intn(20)
		height := 1 + rng.Intn(30)

		lines := paneWith(paras...).Wrap(width, height)
		if len(lines) > height {
			t.Fatalf("trial %d: %d lines for height %d", trial, len(lines), height)
		}
		for _, line := range lines {
			if len(line) > width && strings.Contains(line, " ") {
				t.Fatalf("trial %d: line %q exceeds width %d", trial, line, width)
			}
		}
	}
}

func TestReadingPane_Render(t *testing.T) {
	pane := paneWith("first paragraph")
	out := pane.Render(40, 10)
	assert.Contains(t, out, "Chapter")
	assert.Contains(t, out, "first paragraph")
}
