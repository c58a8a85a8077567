package sources

import (
	"errors"

	"github.com/kerbaras/fictions/pkg/data"
)

var (
	// ErrNotFound is returned when a page cannot be retrieved.
	ErrNotFound = errors.New("page not found")
	// ErrUnrecognizedLayout is returned when a page does not have any of the
	// known shapes. It wraps the extraction error that gave up.
	ErrUnrecognizedLayout = errors.New("unrecognized page layout")
)

// Source fetches fictions and chapters. Every call performs a fresh request.
type Source interface {
	GetFiction(id int) (*data.Fiction, error)
	GetChapter(ref data.ChapterReference) (*data.Chapter, error)
	GetCover(fiction *data.Fiction) ([]byte, error)
}
