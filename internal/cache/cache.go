// Package cache remembers recent provider search outcomes so repeated runs
// don't hammer providers for the same video and language.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

// ErrLocked indicates another process holds the cache lock.
var ErrLocked = errors.New("cache is locked by another process")

const schema = `
CREATE TABLE IF NOT EXISTS searches (
	video_base TEXT NOT NULL,
	language   TEXT NOT NULL,
	found      INTEGER NOT NULL,
	checked_at INTEGER NOT NULL,
	PRIMARY KEY (video_base, language)
);
`

// Store is a sqlite-backed search cache. A lock file next to the database
// keeps concurrent runs to a single writer.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	ttl  time.Duration
	log  *slog.Logger
}

// Open opens (or creates) the cache at path and acquires its lock file.
// Returns ErrLocked when another run holds the lock.
func Open(path string, ttl time.Duration, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &Store{
		db:   db,
		lock: lock,
		ttl:  ttl,
		log:  log.With("component", "cache"),
	}, nil
}

// Seen reports whether a fresh entry exists for (videoBase, lang) and, if so,
// whether that search found a subtitle.
func (s *Store) Seen(videoBase, lang string) (found, ok bool, err error) {
	var f int
	var checkedAt int64
	row := s.db.QueryRow(
		`SELECT found, checked_at FROM searches WHERE video_base = ? AND language = ?`,
		videoBase, lang,
	)
	if err := row.Scan(&f, &checkedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("query cache: %w", err)
	}

	if s.ttl > 0 && time.Since(time.Unix(checkedAt, 0)) > s.ttl {
		return false, false, nil
	}
	return f != 0, true, nil
}

// Record stores the outcome of a search, replacing any previous entry.
func (s *Store) Record(videoBase, lang string, found bool) error {
	f := 0
	if found {
		f = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO searches (video_base, language, found, checked_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (video_base, language) DO UPDATE SET found = excluded.found, checked_at = excluded.checked_at`,
		videoBase, lang, f, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record search: %w", err)
	}
	return nil
}

// Prune removes entries older than the TTL.
func (s *Store) Prune() (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-s.ttl).Unix()
	res, err := s.db.Exec(`DELETE FROM searches WHERE checked_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune cache: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		s.log.Debug("pruned stale cache entries", "count", n)
	}
	return n, nil
}

// Close releases the database and the lock file.
func (s *Store) Close() error {
	err := s.db.Close()
	if uerr := s.lock.Unlock(); uerr != nil && err == nil {
		err = uerr
	}
	return err
}
