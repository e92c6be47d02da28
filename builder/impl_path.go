// Package: wayfinder/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds locations via cfg.idFn/cfg.nameFn in ascending index order (0..n-1),
//     all on cfg.level with cfg.category.
//   - Emits connections (i-1) – i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) locations + O(n-1) connections.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wayfinder/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a corridor of n locations.
// opts override the BuildDirectory options for this constructor only.
func Path(n int, opts ...BuilderOption) Constructor {
	return func(g *core.Graph, base builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		cfg := base.with(opts...)

		for i := 0; i < n; i++ {
			id, name := cfg.location(i)
			loc := core.Location{ID: id, Name: name, Level: cfg.level, Category: cfg.category}
			if err := g.AddLocation(loc); err != nil {
				return fmt.Errorf("%s: AddLocation(%s): %w", methodPath, id, err)
			}
		}

		var uID, vID string
		for i := 1; i < n; i++ {
			uID, vID = cfg.idFn(i-1), cfg.idFn(i)
			if err := g.Connect(uID, vID); err != nil {
				return fmt.Errorf("%s: Connect(%s–%s): %w", methodPath, uID, vID, err)
			}
		}

		return nil
	}
}
