package builder

import "strconv"

// builderConfig is the resolved, immutable-by-convention set of knobs a
// Constructor reads. It is passed by value, so per-constructor overrides
// never leak into sibling constructors.
type builderConfig struct {
	idFn     IDFn
	nameFn   func(idx int) string
	level    int
	category string

	hubID       string
	hubName     string
	hubCategory string
}

const (
	defaultHubID       = "HUB"
	defaultHubName     = "Hall"
	defaultHubCategory = "hall"
)

// newBuilderConfig applies opts over the defaults: decimal IDs, names equal to
// IDs, level 0, no category, hub "HUB".
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		nameFn:      nil,
		hubID:       defaultHubID,
		hubName:     defaultHubName,
		hubCategory: defaultHubCategory,
	}
	return cfg.with(opts...)
}

// with returns a copy of cfg with opts applied.
func (cfg builderConfig) with(opts ...BuilderOption) builderConfig {
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// location materializes the idx-th generated location.
func (cfg builderConfig) location(idx int) (id string, name string) {
	id = cfg.idFn(idx)
	if cfg.nameFn != nil {
		return id, cfg.nameFn(idx)
	}
	return id, id
}

// DefaultIDFn yields "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}
