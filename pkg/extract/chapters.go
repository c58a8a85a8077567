package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/kerbaras/fictions/pkg/data"
	"golang.org/x/net/html"
)

// rowTitlePath reaches the title text of a chapter row:
// <tr> -> first <td> -> <a> -> text.
var rowTitlePath = []int{1, 1, 0}

// ReferenceFromRow builds a chapter reference from a chapter table row.
func ReferenceFromRow(row *goquery.Selection) (data.ChapterReference, error) {
	var ref data.ChapterReference
	if row.Length() == 0 {
		return ref, fmt.Errorf("%w: empty row", ErrMissingField)
	}

	path, ok := row.Attr("data-url")
	if !ok {
		return ref, fmt.Errorf("%w: data-url", ErrMissingField)
	}
	ref.Path = path

	unixtime, ok := row.Find("time").First().Attr("unixtime")
	if !ok {
		return ref, fmt.Errorf("%w: time[unixtime] in %s", ErrMissingField, path)
	}
	published, err := ParseUnixTime(unixtime)
	if err != nil {
		return ref, err
	}
	ref.PublishedAt = published

	node, err := Traverse(row.Nodes[0], rowTitlePath...)
	if err != nil {
		return ref, fmt.Errorf("%w: title in %s: %w", ErrMissingField, path, err)
	}
	ref.Title = strings.TrimSpace(nodeText(node))

	return ref, nil
}

// ChapterEntry is one element of the embedded window.chapters list. Only the
// fields the reader needs are decoded.
type ChapterEntry struct {
	URL   *string `json:"url"`
	Title *string `json:"title"`
	Date  *string `json:"date"`
}

// ReferenceFromEntry builds a chapter reference from an embedded chapter
// list entry. Dates are ISO-8601 in UTC, e.g. 2021-05-03T14:22:01Z.
func ReferenceFromEntry(entry ChapterEntry) (data.ChapterReference, error) {
	var ref data.ChapterReference
	switch {
	case entry.URL == nil:
		return ref, fmt.Errorf("%w: url", ErrMissingField)
	case entry.Title == nil:
		return ref, fmt.Errorf("%w: title of %s", ErrMissingField, *entry.URL)
	case entry.Date == nil:
		return ref, fmt.Errorf("%w: date of %s", ErrMissingField, *entry.URL)
	}

	published, err := time.Parse(time.RFC3339, *entry.Date)
	if err != nil {
		return ref, fmt.Errorf("%w: %q: %w", ErrMalformedTimestamp, *entry.Date, err)
	}

	ref.Path = *entry.URL
	ref.Title = strings.TrimSpace(*entry.Title)
	ref.PublishedAt = published.Unix()
	return ref, nil
}

// ParseChapterList decodes an embedded JSON chapter list, keeping its order.
func ParseChapterList(raw string) ([]data.ChapterReference, error) {
	var entries []ChapterEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode chapter list: %w", err)
	}

	refs := make([]data.ChapterReference, 0, len(entries))
	for i, entry := range entries {
		ref, err := ReferenceFromEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("chapter %d: %w", i, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// ParseUnixTime parses a decimal unix-seconds attribute value.
func ParseUnixTime(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	return v, nil
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
