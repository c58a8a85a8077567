package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS fictions (
	id            BIGINT PRIMARY KEY,
	title         VARCHAR NOT NULL,
	author        VARCHAR,
	chapter_count INTEGER NOT NULL DEFAULT 0,
	updated_at    BIGINT NOT NULL
);
CREATE TABLE IF NOT EXISTS reads (
	fiction_id   BIGINT NOT NULL,
	chapter_path VARCHAR NOT NULL,
	read_at      BIGINT NOT NULL,
	PRIMARY KEY (fiction_id, chapter_path)
);
`

func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return db, nil
}

// Repository keeps the reading history and offline snapshots of tracked
// fictions. It never stores chapter bodies.
type Repository struct {
	db *sql.DB
}

func NewDuckDBRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// SaveFiction upserts the snapshot of a fiction.
func (r *Repository) SaveFiction(fiction *Fiction) error {
	_, err := r.db.Exec(`
		INSERT INTO fictions (id, title, author, chapter_count, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			chapter_count = excluded.chapter_count,
			updated_at = excluded.updated_at`,
		fiction.ID, fiction.Title, fiction.Author, len(fiction.Chapters), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save fiction %d: %w", fiction.ID, err)
	}
	return nil
}

func (r *Repository) GetFiction(id int) (*FictionSummary, error) {
	row := r.db.QueryRow(`
		SELECT id, title, COALESCE(author, ''), chapter_count, updated_at
		FROM fictions WHERE id = ?`, id)

	var f FictionSummary
	if err := row.Scan(&f.ID, &f.Title, &f.Author, &f.ChapterCount, &f.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fiction %d: %w", id, err)
	}
	return &f, nil
}

func (r *Repository) ListFictions() ([]*FictionSummary, error) {
	rows, err := r.db.Query(`
		SELECT id, title, COALESCE(author, ''), chapter_count, updated_at
		FROM fictions ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list fictions: %w", err)
	}
	defer rows.Close()

	var out []*FictionSummary
	for rows.Next() {
		var f FictionSummary
		if err := rows.Scan(&f.ID, &f.Title, &f.Author, &f.ChapterCount, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fiction: %w", err)
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

// DeleteFiction removes the snapshot and the reading history of a fiction.
func (r *Repository) DeleteFiction(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM reads WHERE fiction_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete reads of %d: %w", id, err)
	}
	if _, err := tx.Exec(`DELETE FROM fictions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete fiction %d: %w", id, err)
	}
	return tx.Commit()
}

func (r *Repository) MarkRead(fictionID int, chapterPath string, at time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO reads (fiction_id, chapter_path, read_at) VALUES (?, ?, ?)
		ON CONFLICT (fiction_id, chapter_path) DO UPDATE SET read_at = excluded.read_at`,
		fictionID, chapterPath, at.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to mark %s read: %w", chapterPath, err)
	}
	return nil
}

// ReadChapters returns the set of chapter paths of a fiction that were opened.
func (r *Repository) ReadChapters(fictionID int) (map[string]bool, error) {
	rows, err := r.db.Query(`SELECT chapter_path FROM reads WHERE fiction_id = ?`, fictionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reads: %w", err)
	}
	defer rows.Close()

	read := make(map[string]bool)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("failed to scan read: %w", err)
		}
		read[path] = true
	}
	return read, rows.Err()
}
