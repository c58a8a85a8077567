package data

// Fiction is a serialized work tracked by the reader. Chapters are kept in
// source-page order (oldest first) and are never re-sorted.
type Fiction struct {
	ID       int
	Title    string
	Author   string
	CoverURL string
	Chapters []ChapterReference
}

// ChapterReference points at a chapter without carrying its body.
type ChapterReference struct {
	Path        string // Remote locator, e.g. /fiction/1/slug/chapter/2/slug
	Title       string
	PublishedAt int64 // Unix seconds
}

// Chapter is the fetched content of one chapter.
type Chapter struct {
	Title       string
	Path        string
	Paragraphs  []string
	PublishedAt int64
	EditedAt    int64 // Equals PublishedAt when the chapter was never edited
}

// FictionSummary is the offline snapshot of a tracked fiction kept in the
// history store.
type FictionSummary struct {
	ID           int
	Title        string
	Author       string
	ChapterCount int
	UpdatedAt    int64
}
