package services

import (
	"fmt"
	"log"
	"time"

	"github.com/kerbaras/fictions/pkg/data"
	"github.com/kerbaras/fictions/pkg/sources"
)

// IDStore persists the tracked fiction IDs.
type IDStore interface {
	Load() ([]int, error)
	Save(ids []int) error
}

// History records fictions and read chapters. It is optional.
type History interface {
	SaveFiction(fiction *data.Fiction) error
	DeleteFiction(id int) error
	MarkRead(fictionID int, chapterPath string, at time.Time) error
	ReadChapters(fictionID int) (map[string]bool, error)
}

// LibraryController owns the list of tracked fictions.
type LibraryController struct {
	source   sources.Source
	store    IDStore
	history  History
	fictions []*data.Fiction
	now      func() time.Time
}

func NewLibraryController(source sources.Source, store IDStore, history History) *LibraryController {
	return &LibraryController{
		source:  source,
		store:   store,
		history: history,
		now:     time.Now,
	}
}

// Load reads the stored IDs and fetches each fiction. Fictions that cannot be
// fetched are dropped with a warning.
func (c *LibraryController) Load() error {
	ids, err := c.store.Load()
	if err != nil {
		return err
	}

	fictions := make([]*data.Fiction, 0, len(ids))
	for _, id := range ids {
		fiction, err := c.source.GetFiction(id)
		if err != nil {
			log.Printf("Warning: dropping fiction %d: %v", id, err)
			continue
		}
		fictions = append(fictions, fiction)
		c.record(fiction)
	}
	c.fictions = fictions
	return nil
}

// Save writes the IDs of the tracked fictions in list order.
func (c *LibraryController) Save() error {
	ids := make([]int, len(c.fictions))
	for i, f := range c.fictions {
		ids[i] = f.ID
	}
	return c.store.Save(ids)
}

func (c *LibraryController) Fictions() []*data.Fiction {
	return c.fictions
}

// Add fetches a fiction and appends it to the list. A fiction that is already
// tracked is replaced in place with the fresh copy. On failure the list is
// left untouched.
func (c *LibraryController) Add(id int) (*data.Fiction, error) {
	fiction, err := c.source.GetFiction(id)
	if err != nil {
		return nil, fmt.Errorf("failed to add fiction %d: %w", id, err)
	}

	c.record(fiction)
	for i, f := range c.fictions {
		if f.ID == id {
			c.fictions[i] = fiction
			return fiction, nil
		}
	}
	c.fictions = append(c.fictions, fiction)
	return fiction, nil
}

// Remove drops a fiction from the list and forgets its history.
func (c *LibraryController) Remove(id int) bool {
	for i, f := range c.fictions {
		if f.ID != id {
			continue
		}
		c.fictions = append(c.fictions[:i], c.fictions[i+1:]...)
		if c.history != nil {
			if err := c.history.DeleteFiction(id); err != nil {
				log.Printf("Warning: failed to delete history of %d: %v", id, err)
			}
		}
		return true
	}
	return false
}

// Open fetches a chapter and marks it as read.
func (c *LibraryController) Open(fictionID int, ref data.ChapterReference) (*data.Chapter, error) {
	chapter, err := c.source.GetChapter(ref)
	if err != nil {
		return nil, err
	}
	if c.history != nil {
		if err := c.history.MarkRead(fictionID, ref.Path, c.now()); err != nil {
			log.Printf("Warning: failed to mark %s as read: %v", ref.Path, err)
		}
	}
	return chapter, nil
}

// ReadChapters returns the paths of the chapters of a fiction that were
// opened before. It is empty without a history.
func (c *LibraryController) ReadChapters(fictionID int) map[string]bool {
	if c.history == nil {
		return map[string]bool{}
	}
	read, err := c.history.ReadChapters(fictionID)
	if err != nil {
		log.Printf("Warning: failed to read history of %d: %v", fictionID, err)
		return map[string]bool{}
	}
	return read
}

func (c *LibraryController) record(fiction *data.Fiction) {
	if c.history == nil {
		return
	}
	if err := c.history.SaveFiction(fiction); err != nil {
		log.Printf("Warning: failed to record fiction %d: %v", fiction.ID, err)
	}
}

// HasHistory reports whether read chapters are being recorded.
func (c *LibraryController) HasHistory() bool {
	return c.history != nil
}
