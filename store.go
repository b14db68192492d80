package ogpress

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed catalog. Declaration order is kept in the position
// column and tags are stored as a JSON array, so a catalog round-trips unchanged.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    position INTEGER PRIMARY KEY,
    id TEXT NOT NULL,
    slug TEXT NOT NULL,
    title TEXT NOT NULL,
    excerpt TEXT NOT NULL,
    author TEXT NOT NULL,
    publish_date TEXT NOT NULL,
    read_time INTEGER NOT NULL DEFAULT 0,
    tags TEXT NOT NULL,
    featured INTEGER NOT NULL DEFAULT 0,
    image TEXT NOT NULL,
    draft INTEGER NOT NULL DEFAULT 0,
    content TEXT NOT NULL,
    content_file TEXT NOT NULL
);
`)
	return err
}

// SavePosts replaces the stored catalog with posts, preserving their order.
func (s *Store) SavePosts(posts []Post) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM posts`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO posts (position, id, slug, title, excerpt, author, publish_date, read_time, tags, featured, image, draft, content, content_file) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range posts {
		tags, err := json.Marshal(p.Tags)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(i, p.ID, p.Slug, p.Title, p.Excerpt, p.Author, p.PublishDate, p.ReadTime,
			string(tags), boolInt(p.Featured), p.Image, boolInt(p.Draft), p.Content, p.ContentFile); err != nil {
			return fmt.Errorf("save post %q: %w", p.Slug, err)
		}
	}
	return tx.Commit()
}

// ListPosts returns every stored post, drafts included, in declaration order.
func (s *Store) ListPosts() ([]Post, error) {
	rows, err := s.db.Query(`SELECT id, slug, title, excerpt, author, publish_date, read_time, tags, featured, image, draft, content, content_file FROM posts ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		var tags string
		var featured, draft int
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Author, &p.PublishDate, &p.ReadTime,
			&tags, &featured, &p.Image, &draft, &p.Content, &p.ContentFile); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
			return nil, fmt.Errorf("decode tags of %q: %w", p.Slug, err)
		}
		p.Featured = featured == 1
		p.Draft = draft == 1
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
