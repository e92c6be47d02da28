// Package: wayfinder/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildDirectory(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same options and constructor order ⇒ identical directories
//     (same location order, same neighbor order).
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wayfinder/core"
)

// Constructor applies a deterministic directory mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors wrapped with their method name, and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildDirectory creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildDirectory: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildDirectory(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildDirectory: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildDirectory: %w", err)
		}
	}

	return g, nil
}
