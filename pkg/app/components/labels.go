package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/kerbaras/fictions/pkg/data"
	"github.com/mattn/go-runewidth"
)

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day
	month  = 30 * day
	year   = 365 * day
)

var ageUnits = []struct {
	seconds int64
	name    string
}{
	{year, "year"},
	{month, "month"},
	{week, "week"},
	{day, "day"},
	{hour, "hour"},
	{minute, "minute"},
	{1, "second"},
}

// RelativeAge formats an elapsed number of seconds using the largest unit
// that fits, e.g. "3 days" or "1 hour".
func RelativeAge(seconds int64) string {
	seconds = max(0, seconds)
	for _, u := range ageUnits {
		if seconds >= u.seconds {
			n := seconds / u.seconds
			if n == 1 {
				return "1 " + u.name
			}
			return fmt.Sprintf("%d %ss", n, u.name)
		}
	}
	return "0 seconds"
}

type FictionItem struct {
	Fiction *data.Fiction
}

// Label is the title, cut with "..." when wider than width.
func (f FictionItem) Label(width int) string {
	return runewidth.Truncate(f.Fiction.Title, max(0, width), "...")
}

type ChapterItem struct {
	Ref     data.ChapterReference
	Tracked bool // reading history available
	Read    bool
	Now     func() time.Time
}

// Label is the title and the age of the chapter, right-aligned to width.
func (c ChapterItem) Label(width int) string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	age := RelativeAge(now().Unix() - c.Ref.PublishedAt)

	marker := ""
	if c.Tracked {
		marker = "○ "
		if c.Read {
			marker = "● "
		}
	}

	fixed := runewidth.StringWidth(marker) + 1 + runewidth.StringWidth(age)
	if width < fixed {
		return runewidth.Truncate(marker+c.Ref.Title, max(0, width), "")
	}

	room := width - fixed
	tail := "..."
	if room < runewidth.StringWidth(tail) {
		tail = ""
	}
	title := runewidth.Truncate(c.Ref.Title, room, tail)
	padding := max(1, room-runewidth.StringWidth(title)+1)
	return marker + title + strings.Repeat(" ", padding) + age
}
