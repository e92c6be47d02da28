package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wayfinder/core"
)

// Dataset is a built directory that can be copied into a Store; *core.Graph
// satisfies it.
type Dataset interface {
	Locations() ([]core.Location, error)
	Connections() []core.Connection
}

// AddLocation stores loc under its normalized identifier. The rules match
// core.Graph.AddLocation: blank ids and duplicates are rejected.
func (s *Store) AddLocation(ctx context.Context, loc core.Location) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return addLocation(ctx, tx, loc)
	})
}

// Connect records a symmetric connection. The rules match core.Graph.Connect:
// both endpoints must exist, self-loops are rejected and a repeated pair in
// either orientation is a no-op.
func (s *Store) Connect(ctx context.Context, a, b string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return connect(ctx, tx, a, b)
	})
}

// Import copies every location and connection of d in one transaction,
// preserving insertion order. Nothing is written if any record is rejected.
func (s *Store) Import(ctx context.Context, d Dataset) error {
	locs, err := d.Locations()
	if err != nil {
		return fmt.Errorf("import: read locations: %w", err)
	}
	conns := d.Connections()

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		for _, loc := range locs {
			if err := addLocation(ctx, tx, loc); err != nil {
				return err
			}
		}
		for _, c := range conns {
			if err := connect(ctx, tx, c.A, c.B); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	s.log.Info("dataset imported", zap.Int("locations", len(locs)), zap.Int("connections", len(conns)))
	return nil
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if s.closed.Load() {
		return ErrClosed
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func addLocation(ctx context.Context, tx *sql.Tx, loc core.Location) error {
	loc.ID = core.NormalizeID(loc.ID)
	if loc.ID == "" {
		return core.ErrEmptyLocationID
	}
	ok, err := exists(ctx, tx, loc.ID)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("AddLocation(%s): %w", loc.ID, core.ErrDuplicateLocation)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO locations (id, name, level, category, description) VALUES (?, ?, ?, ?, ?)`,
		loc.ID, loc.Name, loc.Level, loc.Category, loc.Description)
	if err != nil {
		return fmt.Errorf("insert location %q: %w", loc.ID, err)
	}
	return nil
}

func connect(ctx context.Context, tx *sql.Tx, a, b string) error {
	a, b = core.NormalizeID(a), core.NormalizeID(b)
	if a == "" || b == "" {
		return core.ErrEmptyLocationID
	}
	if a == b {
		return fmt.Errorf("Connect(%s, %s): %w", a, b, core.ErrSelfLoop)
	}
	for _, id := range [...]string{a, b} {
		ok, err := exists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("Connect(%s, %s): %q: %w", a, b, id, core.ErrLocationNotFound)
		}
	}

	var seq int64
	err := tx.QueryRowContext(ctx,
		`SELECT seq FROM connections WHERE (a = ? AND b = ?) OR (a = ? AND b = ?)`,
		a, b, b, a).Scan(&seq)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("query connection %s-%s: %w", a, b, err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO connections (a, b) VALUES (?, ?)`, a, b); err != nil {
		return fmt.Errorf("insert connection %s-%s: %w", a, b, err)
	}
	return nil
}

func exists(ctx context.Context, tx *sql.Tx, id string) (bool, error) {
	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations WHERE id = ?`, id).Scan(&n); err != nil {
		return false, fmt.Errorf("query location %q: %w", id, err)
	}
	return n > 0, nil
}
