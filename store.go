package stanza

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// RenderStore wraps a SQLite database caching rendered post HTML, keyed by
// slug and a checksum of the source body. Unchanged bodies are not re-run
// through the markdown renderer across builds or server restarts.
type RenderStore struct {
	db *sql.DB
}

// NewRenderStore opens (or creates) the SQLite database at path, ensures
// the data directory exists, and runs schema migrations.
func NewRenderStore(path string) (*RenderStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access and set a busy
	// timeout so writers wait instead of returning SQLITE_BUSY immediately.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &RenderStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *RenderStore) Close() error {
	return s.db.Close()
}

func (s *RenderStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS renders (
    slug TEXT PRIMARY KEY,
    checksum TEXT NOT NULL,
    html TEXT NOT NULL
);
`)
	return err
}

// Get returns the cached HTML for slug if its checksum still matches.
// A stale or absent entry returns ErrNotFound.
func (s *RenderStore) Get(slug, checksum string) (string, error) {
	var storedChecksum, html string
	err := s.db.QueryRow(`SELECT checksum, html FROM renders WHERE slug = ?`, slug).
		Scan(&storedChecksum, &html)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if storedChecksum != checksum {
		return "", ErrNotFound
	}
	return html, nil
}

// Put upserts the rendered HTML for a slug.
func (s *RenderStore) Put(slug, checksum, html string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO renders (slug, checksum, html) VALUES (?, ?, ?)`,
		slug, checksum, html)
	return err
}

// Delete removes the cached render for a slug.
func (s *RenderStore) Delete(slug string) error {
	_, err := s.db.Exec(`DELETE FROM renders WHERE slug = ?`, slug)
	return err
}

// Prune removes cached renders whose slug is not in keep, so deleted posts
// do not accumulate in the cache.
func (s *RenderStore) Prune(keep []string) error {
	rows, err := s.db.Query(`SELECT slug FROM renders`)
	if err != nil {
		return err
	}
	defer rows.Close()

	keepSet := make(map[string]struct{}, len(keep))
	for _, slug := range keep {
		keepSet[slug] = struct{}{}
	}
	var stale []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return err
		}
		if _, ok := keepSet[slug]; !ok {
			stale = append(stale, slug)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for _, slug := range stale {
		if err := s.Delete(slug); err != nil {
			return err
		}
	}
	return nil
}

// Checksum returns the cache key for a post body.
func Checksum(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}
