// Package sqlstore is a sqlite-backed location directory. It implements
// core.Catalog, so the route engine can run against it unchanged, and it
// keeps the scan history of the wayfinding kiosks.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/wayfinder/core"

	_ "modernc.org/sqlite"
)

const (
	// DefaultCacheSize is the number of Location records kept in memory.
	DefaultCacheSize = 256
	// DefaultQueryTimeout bounds every directory query.
	DefaultQueryTimeout = 2 * time.Second

	// MemoryPath opens a private in-memory database.
	MemoryPath = ":memory:"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("sqlstore: store is closed")

var schema = []string{
	`CREATE TABLE IF NOT EXISTS locations (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  level INTEGER NOT NULL,
  category TEXT NOT NULL,
  description TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS connections (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  a TEXT NOT NULL REFERENCES locations(id),
  b TEXT NOT NULL REFERENCES locations(id)
)`,
	`CREATE INDEX IF NOT EXISTS connections_a ON connections(a)`,
	`CREATE INDEX IF NOT EXISTS connections_b ON connections(b)`,
	`CREATE TABLE IF NOT EXISTS scans (
  id TEXT PRIMARY KEY,
  location_id TEXT NOT NULL,
  scanned_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS scans_scanned_at ON scans(scanned_at)`,
}

// Store is a location directory persisted in sqlite.
//
// Directory reads (Location, Neighbors, Locations, LocationCount, Stats) take
// no context because core.Directory does not; each one runs under its own
// query timeout instead. Writes take a context.
//
// Close may race with in-flight calls: those either finish or fail with
// ErrClosed or the driver's closed-database error.
type Store struct {
	db      *sql.DB
	closed  atomic.Bool
	log     *zap.Logger
	cache   *lru.Cache[string, core.Location]
	timeout time.Duration
	now     func() time.Time

	cacheSize int
}

var _ core.Catalog = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCacheSize sets how many Location records are cached; n <= 0 keeps the default.
func WithCacheSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

// WithQueryTimeout bounds each directory read; d <= 0 keeps the default.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithClock overrides the time source used to stamp scans.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open opens (creating if needed) the database at path and ensures the schema.
// MemoryPath gives a throwaway database.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		log:       zap.NewNop(),
		timeout:   DefaultQueryTimeout,
		now:       time.Now,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a :memory: database lives and dies with its connection
	db.SetMaxOpenConns(1)
	s.db = db

	cache, err := lru.New[string, core.Location](s.cacheSize)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cache: %w", err)
	}
	s.cache = cache

	if err := s.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	s.log.Info("directory opened", zap.String("path", path), zap.Int("cache_size", s.cacheSize))
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	for _, ddl := range schema {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Close releases the database. A second call returns ErrClosed.
func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	s.cache.Purge()
	s.log.Info("directory closed")
	return s.db.Close()
}

// readContext returns the context a directory read runs under.
func (s *Store) readContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Reset deletes every location, connection and scan.
func (s *Store) Reset(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}
	for _, table := range []string{"connections", "locations", "scans"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	s.cache.Purge()
	return nil
}
