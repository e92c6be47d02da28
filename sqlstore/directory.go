package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wayfinder/core"
)

// Location resolves id, serving repeat lookups from the cache.
func (s *Store) Location(id string) (core.Location, error) {
	key := core.NormalizeID(id)
	if key == "" {
		return core.Location{}, core.ErrEmptyLocationID
	}
	if loc, ok := s.cache.Get(key); ok {
		return loc, nil
	}
	if s.closed.Load() {
		return core.Location{}, ErrClosed
	}

	ctx, cancel := s.readContext()
	defer cancel()

	var loc core.Location
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, level, category, description FROM locations WHERE id = ?`, key,
	).Scan(&loc.ID, &loc.Name, &loc.Level, &loc.Category, &loc.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Location{}, fmt.Errorf("%q: %w", key, core.ErrLocationNotFound)
	}
	if err != nil {
		return core.Location{}, fmt.Errorf("query location %q: %w", key, err)
	}
	s.cache.Add(key, loc)
	s.log.Debug("location cached", zap.String("id", key))
	return loc, nil
}

// Neighbors returns the locations connected to id in connection insertion order.
func (s *Store) Neighbors(id string) ([]string, error) {
	key := core.NormalizeID(id)
	if key == "" {
		return nil, core.ErrEmptyLocationID
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	out, err := s.neighbors(key)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		// isolated or unknown
		if _, err := s.Location(key); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Store) neighbors(key string) ([]string, error) {
	ctx, cancel := s.readContext()
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT CASE WHEN a = ? THEN b ELSE a END FROM connections WHERE a = ? OR b = ? ORDER BY seq`,
		key, key, key)
	if err != nil {
		return nil, fmt.Errorf("query neighbors of %q: %w", key, err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan neighbor of %q: %w", key, err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate neighbors of %q: %w", key, err)
	}
	return out, nil
}

// Locations returns every location in insertion order.
func (s *Store) Locations() ([]core.Location, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	ctx, cancel := s.readContext()
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, level, category, description FROM locations ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	out := []core.Location{}
	for rows.Next() {
		var loc core.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Level, &loc.Category, &loc.Description); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}
	return out, nil
}

// LocationCount returns the number of stored locations.
func (s *Store) LocationCount() (int, error) {
	return s.count("locations")
}

// ConnectionCount returns the number of stored connections.
func (s *Store) ConnectionCount() (int, error) {
	return s.count("connections")
}

func (s *Store) count(table string) (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	ctx, cancel := s.readContext()
	defer cancel()

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// Stats summarizes the stored building.
func (s *Store) Stats() (core.Stats, error) {
	locs, err := s.Locations()
	if err != nil {
		return core.Stats{}, err
	}
	n, err := s.ConnectionCount()
	if err != nil {
		return core.Stats{}, err
	}
	return core.Summarize(locs, n), nil
}
