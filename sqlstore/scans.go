package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/wayfinder/core"
)

// Scan records a visitor scanning the marker of a location.
type Scan struct {
	ID         uuid.UUID `json:"id"`
	LocationID string    `json:"location_id"`
	ScannedAt  time.Time `json:"scanned_at"`
}

// DefaultRecentScans is the page size RecentScans uses for limit <= 0.
const DefaultRecentScans = 20

// timeLayout is fixed width so scanned_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// LogScan appends a scan of locationID to the history. The identifier is
// normalized; whether it names a known location is the caller's concern.
func (s *Store) LogScan(ctx context.Context, locationID string) (Scan, error) {
	key := core.NormalizeID(locationID)
	if key == "" {
		return Scan{}, core.ErrEmptyLocationID
	}
	if s.closed.Load() {
		return Scan{}, ErrClosed
	}

	scan := Scan{ID: uuid.New(), LocationID: key, ScannedAt: s.now().UTC()}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scans (id, location_id, scanned_at) VALUES (?, ?, ?)`,
		scan.ID.String(), scan.LocationID, scan.ScannedAt.Format(timeLayout))
	if err != nil {
		return Scan{}, fmt.Errorf("insert scan: %w", err)
	}
	s.log.Info("scan logged", zap.String("location", key), zap.Stringer("scan_id", scan.ID))
	return scan, nil
}

// RecentScans returns up to limit scans, newest first.
func (s *Store) RecentScans(ctx context.Context, limit int) ([]Scan, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = DefaultRecentScans
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, location_id, scanned_at FROM scans ORDER BY scanned_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}
	defer rows.Close()

	out := []Scan{}
	for rows.Next() {
		var id, at string
		var scan Scan
		if err := rows.Scan(&id, &scan.LocationID, &at); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if scan.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("scan %q: parse id: %w", id, err)
		}
		if scan.ScannedAt, err = time.Parse(timeLayout, at); err != nil {
			return nil, fmt.Errorf("scan %q: parse time: %w", id, err)
		}
		out = append(out, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scans: %w", err)
	}
	return out, nil
}
