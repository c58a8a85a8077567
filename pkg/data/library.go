package data

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrPersistence is returned when the library file cannot be read or written.
var ErrPersistence = errors.New("library persistence failed")

// Library is the flat file of tracked fiction IDs, one decimal ID per line.
type Library struct {
	path string
}

func NewLibrary(path string) *Library {
	return &Library{path: path}
}

// Path returns the location of the library file.
func (l *Library) Path() string {
	return l.path
}

// Save writes ids to the library file, creating parent directories as needed.
func (l *Library) Save(ids []int) error {
	if dir := filepath.Dir(l.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create library directory: %w", ErrPersistence, err)
		}
	}

	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = strconv.Itoa(id)
	}

	if err := os.WriteFile(l.path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("%w: failed to write library: %w", ErrPersistence, err)
	}
	return nil
}

// Load reads the tracked IDs. Lines that are not integers are skipped.
// A missing file is an empty library.
func (l *Library) Load() ([]int, error) {
	content, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read library: %w", ErrPersistence, err)
	}

	var ids []int
	for n, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			log.Printf("Warning: skipping line %d of %s: %v", n+1, l.path, err)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
