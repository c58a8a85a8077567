package services

import (
	"sync"
	"time"

	"github.com/kerbaras/fictions/pkg/data"
)

type mockSource struct {
	getFictionFunc func(id int) (*data.Fiction, error)
	getChapterFunc func(ref data.ChapterReference) (*data.Chapter, error)
	getCoverFunc   func(fiction *data.Fiction) ([]byte, error)
}

func (m *mockSource) GetFiction(id int) (*data.Fiction, error) {
	if m.getFictionFunc != nil {
		return m.getFictionFunc(id)
	}
	return nil, nil
}

func (m *mockSource) GetChapter(ref data.ChapterReference) (*data.Chapter, error) {
	if m.getChapterFunc != nil {
		return m.getChapterFunc(ref)
	}
	return nil, nil
}

func (m *mockSource) GetCover(fiction *data.Fiction) ([]byte, error) {
	if m.getCoverFunc != nil {
		return m.getCoverFunc(fiction)
	}
	return nil, nil
}

type mockStore struct {
	ids     []int
	loadErr error
	saveErr error
	saved   []int
}

func (m *mockStore) Load() ([]int, error) {
	return m.ids, m.loadErr
}

func (m *mockStore) Save(ids []int) error {
	m.saved = append([]int(nil), ids...)
	return m.saveErr
}

type mockHistory struct {
	mu      sync.Mutex
	saved   []int
	deleted []int
	read    map[int]map[string]bool
	readAt  time.Time
	saveErr error
	readErr error
}

func newMockHistory() *mockHistory {
	return &mockHistory{read: make(map[int]map[string]bool)}
}

func (m *mockHistory) SaveFiction(fiction *data.Fiction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, fiction.ID)
	return m.saveErr
}

func (m *mockHistory) DeleteFiction(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, id)
	delete(m.read, id)
	return nil
}

func (m *mockHistory) MarkRead(fictionID int, chapterPath string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.read[fictionID] == nil {
		m.read[fictionID] = make(map[string]bool)
	}
	m.read[fictionID][chapterPath] = true
	m.readAt = at
	return nil
}

func (m *mockHistory) ReadChapters(fictionID int) (map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	out := make(map[string]bool)
	for k, v := range m.read[fictionID] {
		out[k] = v
	}
	return out, nil
}

type mockPublisher struct {
	publishFunc func(fiction *data.Fiction, chapters []*data.Chapter, cover []byte) (string, error)
}

func (m *mockPublisher) Publish(fiction *data.Fiction, chapters []*data.Chapter, cover []byte) (string, error) {
	if m.publishFunc != nil {
		return m.publishFunc(fiction, chapters, cover)
	}
	return "", nil
}
