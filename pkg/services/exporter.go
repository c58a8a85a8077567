package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kerbaras/fictions/pkg/data"
	"github.com/kerbaras/fictions/pkg/integrations"
	"github.com/kerbaras/fictions/pkg/sources"
	"golang.org/x/sync/errgroup"
)

// ExportProgress reports the state of one chapter of an export.
type ExportProgress struct {
	FictionID int
	Index     int
	Total     int
	Title     string
	Status    string // "fetching", "done", "error"
	Error     error
}

// Exporter fetches every chapter of a fiction and hands them to a publisher.
type Exporter struct {
	source       sources.Source
	publisher    integrations.Publisher
	concurrency  int
	interval     time.Duration
	progressChan chan ExportProgress
	closeOnce    sync.Once
}

func NewExporter(source sources.Source, publisher integrations.Publisher, concurrency int) *Exporter {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Exporter{
		source:       source,
		publisher:    publisher,
		concurrency:  concurrency,
		interval:     500 * time.Millisecond, // 2 req/sec
		progressChan: make(chan ExportProgress, 100),
	}
}

// WithInterval sets the minimum spacing between chapter requests.
func (e *Exporter) WithInterval(interval time.Duration) *Exporter {
	if interval > 0 {
		e.interval = interval
	}
	return e
}

func (e *Exporter) Progress() <-chan ExportProgress {
	return e.progressChan
}

// Export fetches the fiction and all of its chapters and publishes them.
// It fails if any chapter fails. A missing cover only logs a warning.
func (e *Exporter) Export(id int) (string, error) {
	fiction, err := e.source.GetFiction(id)
	if err != nil {
		return "", fmt.Errorf("failed to fetch fiction %d: %w", id, err)
	}

	chapters, err := e.fetchChapters(fiction)
	if err != nil {
		return "", err
	}

	var cover []byte
	if fiction.CoverURL != "" {
		cover, err = e.source.GetCover(fiction)
		if err != nil {
			log.Printf("Warning: no cover for %q: %v", fiction.Title, err)
			cover = nil
		}
	}

	path, err := e.publisher.Publish(fiction, chapters, cover)
	if err != nil {
		return "", fmt.Errorf("failed to publish %q: %w", fiction.Title, err)
	}
	return path, nil
}

// fetchChapters keeps the source order regardless of completion order.
func (e *Exporter) fetchChapters(fiction *data.Fiction) ([]*data.Chapter, error) {
	refs := fiction.Chapters
	chapters := make([]*data.Chapter, len(refs))

	limiter := time.NewTicker(e.interval)
	defer limiter.Stop()

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(e.concurrency)

	for i, ref := range refs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return nil
			case <-limiter.C:
			}

			progress := ExportProgress{FictionID: fiction.ID, Index: i, Total: len(refs), Title: ref.Title}
			e.sendProgress(progress, "fetching", nil)

			chapter, err := e.source.GetChapter(ref)
			if err != nil {
				e.sendProgress(progress, "error", err)
				return fmt.Errorf("chapter %q: %w", ref.Title, err)
			}
			if chapter.Title == "" {
				chapter.Title = ref.Title
			}
			chapters[i] = chapter

			e.sendProgress(progress, "done", nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return chapters, nil
}

// sendProgress drops the update when nobody keeps up with the channel.
func (e *Exporter) sendProgress(progress ExportProgress, status string, err error) {
	progress.Status = status
	progress.Error = err
	select {
	case e.progressChan <- progress:
	default:
	}
}

// Close closes the progress channel. The exporter cannot be used afterwards.
func (e *Exporter) Close() {
	e.closeOnce.Do(func() {
		close(e.progressChan)
	})
}
