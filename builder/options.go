// Package: wayfinder/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "strings"

// BuilderOption customizes a builderConfig before a constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the location ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithNameScheme sets the display-name generator: idx -> string.
// Without it, generated locations are named after their IDs. Panics on nil.
func WithNameScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) { c.nameFn = fn }
}

// WithLevel places generated locations on the given floor.
func WithLevel(level int) BuilderOption {
	return func(c *builderConfig) { c.level = level }
}

// WithCategory tags generated locations (e.g. "classroom").
func WithCategory(category string) BuilderOption {
	return func(c *builderConfig) { c.category = category }
}

// WithHub sets the hub record used by Star. Panics on a blank id.
func WithHub(id, name, category string) BuilderOption {
	if strings.TrimSpace(id) == "" {
		panic("builder: WithHub(blank id)")
	}
	return func(c *builderConfig) {
		c.hubID, c.hubName, c.hubCategory = id, name, category
	}
}
