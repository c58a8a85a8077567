package sources

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kerbaras/fictions/pkg/data"
	"github.com/kerbaras/fictions/pkg/extract"
	"github.com/kerbaras/fictions/pkg/utils"
)

const (
	DefaultBaseURL = "https://www.royalroad.com"

	chaptersMarker = "window.chapters = "
)

// Positions of the publish and edit <time> elements inside .profile-info.
// The region has no stable class hooks for them.
var (
	publishedPath = []int{3, 1, 3}
	editedPath    = []int{3, 3, 3}
)

type RoyalRoad struct {
	api *utils.API
}

func NewRoyalRoad(api *utils.API) *RoyalRoad {
	if api == nil {
		api = utils.NewAPI(DefaultBaseURL)
	}
	return &RoyalRoad{api: api}
}

func (r *RoyalRoad) document(path string) (*goquery.Document, error) {
	body, err := r.api.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnrecognizedLayout, path, err)
	}
	return doc, nil
}

// GetFiction fetches /fiction/{id} and extracts its title and chapter list.
func (r *RoyalRoad) GetFiction(id int) (*data.Fiction, error) {
	path := fmt.Sprintf("/fiction/%d", id)
	doc, err := r.document(path)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		return nil, fmt.Errorf("%w: %s: %w: h1", ErrUnrecognizedLayout, path, extract.ErrMissingField)
	}

	chapters, err := chapterList(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnrecognizedLayout, path, err)
	}

	fiction := &data.Fiction{
		ID:       id,
		Title:    title,
		Author:   strings.TrimSpace(doc.Find(".fic-title h4 a").First().Text()),
		Chapters: chapters,
	}
	if src, ok := doc.Find("img.thumbnail").First().Attr("src"); ok {
		fiction.CoverURL = src
	}
	return fiction, nil
}

var errNoChapterList = errors.New("no chapter table or embedded chapter list")

// chapterList prefers the embedded window.chapters list and falls back to
// the rendered chapter table.
func chapterList(doc *goquery.Document) ([]data.ChapterReference, error) {
	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := s.Text(); strings.Contains(text, chaptersMarker) {
			script = text
			return false
		}
		return true
	})

	if script != "" {
		raw, err := extract.LocateJSONArray(script, chaptersMarker)
		if err != nil {
			return nil, err
		}
		return extract.ParseChapterList(raw)
	}

	rows := doc.Find("tr.chapter-row")
	if rows.Length() == 0 && doc.Find("table#chapters").Length() == 0 {
		return nil, errNoChapterList
	}

	chapters := make([]data.ChapterReference, 0, rows.Length())
	var rowErr error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		ref, err := extract.ReferenceFromRow(row)
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i, err)
			return false
		}
		chapters = append(chapters, ref)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return chapters, nil
}

// GetChapter fetches the chapter page behind ref.
func (r *RoyalRoad) GetChapter(ref data.ChapterReference) (*data.Chapter, error) {
	doc, err := r.document(ref.Path)
	if err != nil {
		return nil, err
	}

	layoutErr := func(err error) error {
		return fmt.Errorf("%w: %s: %w", ErrUnrecognizedLayout, ref.Path, err)
	}

	info := doc.Find(".profile-info").First()
	if info.Length() == 0 {
		return nil, layoutErr(fmt.Errorf("%w: .profile-info", extract.ErrMissingField))
	}

	published, err := timeAt(info, publishedPath)
	if err != nil {
		return nil, layoutErr(err)
	}

	edited := published
	if e, err := timeAt(info, editedPath); err == nil {
		edited = e
	} else if errors.Is(err, extract.ErrMalformedTimestamp) {
		return nil, layoutErr(err)
	}

	content := doc.Find(".chapter-content").First()
	if content.Length() == 0 {
		return nil, layoutErr(fmt.Errorf("%w: .chapter-content", extract.ErrMissingField))
	}

	title := ref.Title
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	return &data.Chapter{
		Title:       title,
		Path:        ref.Path,
		Paragraphs:  extract.Flatten(content.Nodes[0]),
		PublishedAt: published,
		EditedAt:    edited,
	}, nil
}

func timeAt(region *goquery.Selection, path []int) (int64, error) {
	node, err := extract.Traverse(region.Nodes[0], path...)
	if err != nil {
		return 0, err
	}
	unixtime, ok := extract.Attr(node, "unixtime")
	if !ok {
		return 0, fmt.Errorf("%w: unixtime at %v", extract.ErrMissingField, path)
	}
	return extract.ParseUnixTime(unixtime)
}

// GetCover downloads the cover image of a fiction.
func (r *RoyalRoad) GetCover(fiction *data.Fiction) ([]byte, error) {
	if fiction.CoverURL == "" {
		return nil, fmt.Errorf("%w: fiction %d has no cover", ErrNotFound, fiction.ID)
	}

	url := fiction.CoverURL
	if strings.HasPrefix(url, "/") {
		url = r.api.BaseURL() + url
	}

	body, err := r.api.Fetch(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, url, err)
	}
	return body, nil
}
