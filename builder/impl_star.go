// Package: wayfinder/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the hub from cfg.hubID/hubName/hubCategory on cfg.level.
//   - Adds leaves via cfg.idFn/cfg.nameFn for i = 1..n-1 and connects
//     hub – leaf[i] in that order, so the hub's neighbor list is ascending.
//
// Complexity:
//   - Time: O(n) locations + O(n-1) connections.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wayfinder/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 spokes.
// opts override the BuildDirectory options for this constructor only.
func Star(n int, opts ...BuilderOption) Constructor {
	return func(g *core.Graph, base builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		cfg := base.with(opts...)

		hub := core.Location{ID: cfg.hubID, Name: cfg.hubName, Level: cfg.level, Category: cfg.hubCategory}
		if err := g.AddLocation(hub); err != nil {
			return fmt.Errorf("%s: AddLocation(%s): %w", methodStar, cfg.hubID, err)
		}

		for i := 1; i < n; i++ {
			id, name := cfg.location(i)
			leaf := core.Location{ID: id, Name: name, Level: cfg.level, Category: cfg.category}
			if err := g.AddLocation(leaf); err != nil {
				return fmt.Errorf("%s: AddLocation(%s): %w", methodStar, id, err)
			}
			if err := g.Connect(cfg.hubID, id); err != nil {
				return fmt.Errorf("%s: Connect(%s–%s): %w", methodStar, cfg.hubID, id, err)
			}
		}

		return nil
	}
}
