// Package cache persists emitted JavaScript keyed by source content hash,
// so unchanged files are not recompiled across builds.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const dbFileName = "cache.db"

const schema = `
CREATE TABLE IF NOT EXISTS units (
	path       TEXT NOT NULL,
	hash       TEXT NOT NULL,
	output     TEXT NOT NULL,
	build_id   TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (path, hash)
);
`

// Cache is an on-disk build cache. Entries are keyed by (source path,
// content hash); a stale hash simply misses. Every run gets a fresh build
// id recorded with the entries it wrote.
type Cache struct {
	db      *sql.DB
	buildID string
}

// Open opens (or creates) the cache database under dir.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}

	return &Cache{db: db, buildID: uuid.NewString()}, nil
}

// BuildID identifies this compiler run in cache entries and verbose output.
func (c *Cache) BuildID() string { return c.buildID }

// Hash returns the content hash used as a cache key.
func Hash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached output for (path, hash), if present.
func (c *Cache) Get(path, hash string) (string, bool, error) {
	var output string
	err := c.db.QueryRow(
		`SELECT output FROM units WHERE path = ? AND hash = ?`, path, hash,
	).Scan(&output)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup for %s: %w", path, err)
	}
	return output, true, nil
}

// Put stores output for (path, hash), dropping any entry for an older hash
// of the same path.
func (c *Cache) Put(path, hash, output string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("cache store for %s: %w", path, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM units WHERE path = ?`, path); err != nil {
		return fmt.Errorf("cache store for %s: %w", path, err)
	}
	_, err = tx.Exec(
		`INSERT INTO units (path, hash, output, build_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		path, hash, output, c.buildID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache store for %s: %w", path, err)
	}
	return tx.Commit()
}

// Clear removes every entry.
func (c *Cache) Clear() error {
	_, err := c.db.Exec(`DELETE FROM units`)
	return err
}

func (c *Cache) Close() error {
	return c.db.Close()
}
