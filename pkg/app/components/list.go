package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/fictions/pkg/app/styles"
)

// Labeled items can render themselves into a single line of at most width
// display cells.
type Labeled interface {
	Label(width int) string
}

// Row is one screen line of a list: the screen row, the index of the item
// in the underlying sequence, and the item itself.
type Row[T Labeled] struct {
	Screen int
	Index  int
	Item   T
}

// ListState is a scrollable cursor over a sequence of items.
//
// selected and top always index the underlying sequence. Reversing only
// changes how the window [top, top+height) is drawn: forward lists draw it
// top-down, reversed lists bottom-up so the highest index is on row 0.
type ListState[T Labeled] struct {
	items    []T
	selected int
	top      int
	reversed bool
}

func NewListState[T Labeled](reversed bool) *ListState[T] {
	return &ListState[T]{reversed: reversed}
}

// Reset replaces the items and moves the cursor to the first item on screen:
// index 0 for forward lists, the last index for reversed ones.
func (l *ListState[T]) Reset(items []T) {
	l.items = items
	l.top = 0
	l.selected = 0
	if l.reversed && len(items) > 0 {
		l.selected = len(items) - 1
	}
}

// SetItems replaces the items keeping the cursor, clamped to the new length.
func (l *ListState[T]) SetItems(items []T) {
	l.items = items
	l.clamp()
}

// Remove deletes the item at index and re-clamps the cursor.
func (l *ListState[T]) Remove(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.clamp()
}

func (l *ListState[T]) clamp() {
	n := len(l.items)
	if n == 0 {
		l.selected, l.top = 0, 0
		return
	}
	if l.selected >= n {
		l.selected = n - 1
	}
	if l.top > l.selected {
		l.top = l.selected
	}
}

func (l *ListState[T]) Items() []T         { return l.items }
func (l *ListState[T]) Len() int           { return len(l.items) }
func (l *ListState[T]) SelectedIndex() int { return l.selected }
func (l *ListState[T]) Top() int           { return l.top }
func (l *ListState[T]) Reversed() bool     { return l.reversed }

// Selected returns the item under the cursor.
func (l *ListState[T]) Selected() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[l.selected], true
}

// MoveSelection moves the cursor by delta in the underlying sequence,
// clamped to the list bounds.
func (l *ListState[T]) MoveSelection(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.selected = max(0, min(len(l.items)-1, l.selected+delta))
}

// MoveDisplay moves the cursor by delta screen rows. Positive is down.
func (l *ListState[T]) MoveDisplay(delta int) {
	if l.reversed {
		delta = -delta
	}
	l.MoveSelection(delta)
}

// ToggleReversed flips the display order. The cursor is untouched.
func (l *ListState[T]) ToggleReversed() {
	l.reversed = !l.reversed
}

// RecomputeWindow scrolls the window the least amount that keeps the
// selected item visible in height rows.
func (l *ListState[T]) RecomputeWindow(height int) {
	if len(l.items) == 0 {
		l.selected, l.top = 0, 0
		return
	}
	height = max(1, height)
	if l.top > l.selected {
		l.top = l.selected
	}
	if l.selected-l.top >= height {
		l.top = l.selected - height + 1
	}
}

// VisibleSlice maps the window onto screen rows.
func (l *ListState[T]) VisibleSlice(height int) []Row[T] {
	if len(l.items) == 0 || height < 1 {
		return nil
	}
	end := min(len(l.items), l.top+height)

	rows := make([]Row[T], 0, end-l.top)
	for i := 0; i < end-l.top; i++ {
		index := l.top + i
		if l.reversed {
			index = end - 1 - i
		}
		rows = append(rows, Row[T]{Screen: i, Index: index, Item: l.items[index]})
	}
	return rows
}

// Render draws the window into a block of width x height cells. The
// selected row is highlighted when the list has focus. The window is drawn
// as is; callers recompute it when the cursor or the height changes.
func (l *ListState[T]) Render(width, height int, focused bool, empty string) string {
	if len(l.items) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styles.MutedStyle.Render(empty))
	}

	lines := make([]string, 0, height)
	for _, row := range l.VisibleSlice(height) {
		label := row.Item.Label(width)
		switch {
		case row.Index == l.selected && focused:
			label = styles.SelectedRowStyle.Width(width).Render(label)
		case row.Index == l.selected:
			label = styles.InactiveSelectionStyle.Width(width).Render(label)
		default:
			label = styles.TextStyle.Render(label)
		}
		lines = append(lines, label)
	}
	return strings.Join(lines, "\n")
}
