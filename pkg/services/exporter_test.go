package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kerbaras/fictions/pkg/data"
	"github.com/kerbaras/fictions/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fictionWithChapters(id, n int) *data.Fiction {
	f := &data.Fiction{ID: id, Title: fmt.Sprintf("Fiction %d", id), CoverURL: "/cover.png"}
	for i := 0; i < n; i++ {
		f.Chapters = append(f.Chapters, data.ChapterReference{
			Path:  fmt.Sprintf("/fiction/%d/c/%d", id, i),
			Title: fmt.Sprintf("Chapter %d", i),
		})
	}
	return f
}

func TestExporter_ExportKeepsOrder(t *testing.T) {
	fiction := fictionWithChapters(1, 12)
	var inFlight, maxInFlight int32
	source := &mockSource{
		getFictionFunc: func(id int) (*data.Fiction, error) { return fiction, nil },
		getChapterFunc: func(ref data.ChapterReference) (*data.Chapter, error) {
			n := atomic.AddInt32(&inFlight, 1)
			defer atomic.AddInt32(&inFlight, -1)
			for {
				m := atomic.LoadInt32(&maxInFlight)
				if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
					break
				}
			}
			time.Sleep(time.Duration(rand.Intn(3)) * time.Millisecond)
			return &data.Chapter{Title: ref.Title, Path: ref.Path, Paragraphs: []string{ref.Path}}, nil
		},
		getCoverFunc: func(f *data.Fiction) ([]byte, error) { return []byte("cover"), nil },
	}

	var got []*data.Chapter
	var gotCover []byte
	publisher := &mockPublisher{
		publishFunc: func(f *data.Fiction, chapters []*data.Chapter, cover []byte) (string, error) {
			got = chapters
			gotCover = cover
			return "/out/Fiction 1.epub", nil
		},
	}

	exporter := NewExporter(source, publisher, 3).WithInterval(time.Millisecond)
	defer exporter.Close()

	path, err := exporter.Export(1)
	require.NoError(t, err)

	assert.Equal(t, "/out/Fiction 1.epub", path)
	assert.Equal(t, []byte("cover"), gotCover)
	require.Len(t, got, 12)
	for i, chapter := range got {
		if chapter.Path != fiction.Chapters[i].Path {
			t.Errorf("chapter %d: expected %s, got %s", i, fiction.Chapters[i].Path, chapter.Path)
		}
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&maxInFlight), int32(3))
}

func TestExporter_ChapterFailureAborts(t *testing.T) {
	fiction := fictionWithChapters(2, 5)
	source := &mockSource{
		getFictionFunc: func(id int) (*data.Fiction, error) { return fiction, nil },
		getChapterFunc: func(ref data.ChapterReference) (*data.Chapter, error) {
			if ref.Title == "Chapter 3" {
				return nil, sources.ErrUnrecognizedLayout
			}
			return &data.Chapter{Title: ref.Title, Path: ref.Path}, nil
		},
	}
	published := false
	publisher := &mockPublisher{
		publishFunc: func(*data.Fiction, []*data.Chapter, []byte) (string, error) {
			published = true
			return "", nil
		},
	}

	exporter := NewExporter(source, publisher, 2).WithInterval(time.Millisecond)
	defer exporter.Close()

	_, err := exporter.Export(2)
	assert.True(t, errors.Is(err, sources.ErrUnrecognizedLayout))
	assert.False(t, published, "publisher must not run after a chapter failure")
}

func TestExporter_FictionFailure(t *testing.T) {
	source := &mockSource{
		getFictionFunc: func(id int) (*data.Fiction, error) { return nil, sources.ErrNotFound },
	}
	exporter := NewExporter(source, &mockPublisher{}, 1).WithInterval(time.Millisecond)
	defer exporter.Close()

	_, err := exporter.Export(3)
	assert.True(t, errors.Is(err, sources.ErrNotFound))
}

func TestExporter_CoverFailureIsNotFatal(t *testing.T) {
	fiction := fictionWithChapters(4, 2)
	source := &mockSource{
		getFictionFunc: func(id int) (*data.Fiction, error) { return fiction, nil },
		getChapterFunc: func(ref data.ChapterReference) (*data.Chapter, error) {
			return &data.Chapter{Title: ref.Title, Path: ref.Path}, nil
		},
		getCoverFunc: func(*data.Fiction) ([]byte, error) { return nil, sources.ErrNotFound },
	}
	var gotCover []byte
	publisher := &mockPublisher{
		publishFunc: func(f *data.Fiction, chapters []*data.Chapter, cover []byte) (string, error) {
			gotCover = cover
			return "ok.epub", nil
		},
	}

	exporter := NewExporter(source, publisher, 1).WithInterval(time.Millisecond)
	defer exporter.Close()

	path, err := exporter.Export(4)
	require.NoError(t, err)
	assert.Equal(t, "ok.epub", path)
	assert.Nil(t, gotCover)
}

func TestExporter_Progress(t *testing.T) {
	fiction := fictionWithChapters(5, 3)
	source := &mockSource{
		getFictionFunc: func(id int) (*data.Fiction, error) { return fiction, nil },
		getChapterFunc: func(ref data.ChapterReference) (*data.Chapter, error) {
			return &data.Chapter{Title: ref.Title, Path: ref.Path}, nil
		},
	}
	exporter := NewExporter(source, &mockPublisher{}, 1).WithInterval(time.Millisecond)

	_, err := exporter.Export(5)
	require.NoError(t, err)
	exporter.Close()

	done := 0
	for p := range exporter.Progress() {
		assert.Equal(t, 5, p.FictionID)
		assert.Equal(t, 3, p.Total)
		if p.Status == "done" {
			done++
		}
	}
	assert.Equal(t, 3, done)
}

func TestExporter_CloseTwice(t *testing.T) {
	exporter := NewExporter(&mockSource{}, &mockPublisher{}, 0)
	exporter.Close()
	exporter.Close()
	assert.Equal(t, 1, exporter.concurrency)
}
