// File: builder_impl_test.go
// Package builder_test contains functional tests for the constructors and the
// reference datasets, verifying topology, counts, attributes and error paths.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/builder"
	"github.com/katalvlaran/wayfinder/core"
)

// ids lists location IDs of g in insertion order.
func ids(t *testing.T, g *core.Graph) []string {
	t.Helper()
	locs, err := g.Locations()
	require.NoError(t, err)
	out := make([]string, 0, len(locs))
	for _, l := range locs {
		out = append(out, l.ID)
	}
	return out
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cons        []builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Path(4)",
			cons:  []builder.Constructor{builder.Path(4, builder.WithIDScheme(builder.SymbolIDFn))},
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []string{"A", "B", "C", "D"}, ids(t, g))
				require.True(t, g.HasConnection("A", "B"))
				require.True(t, g.HasConnection("D", "C"))
				require.False(t, g.HasConnection("A", "C"))
			},
		},
		{
			name: "Star(4)",
			cons: []builder.Constructor{
				builder.Star(4, builder.WithIDScheme(builder.SymbolIDFn), builder.WithHub("H", "Hall", "hall")),
			},
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				nb, err := g.Neighbors("H")
				require.NoError(t, err)
				require.Equal(t, []string{"B", "C", "D"}, nb)
				hub, err := g.Location("h")
				require.NoError(t, err)
				require.Equal(t, "hall", hub.Category)
			},
		},
		{
			name: "Locations+Chain",
			cons: []builder.Constructor{
				builder.Locations(core.Location{ID: "x"}, core.Location{ID: "y"}, core.Location{ID: "z"}),
				builder.Chain("X", "Y", "Z"),
			},
			wantV: 3, wantE: 2,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []string{"X", "Y", "Z"}, ids(t, g))
				require.True(t, g.HasConnection("Z", "Y"))
			},
		},
		{
			name: "Connections",
			cons: []builder.Constructor{
				builder.Locations(core.Location{ID: "P"}, core.Location{ID: "Q"}),
				builder.Connections(core.Connection{A: "P", B: "Q"}, core.Connection{A: "Q", B: "P"}),
			},
			wantV: 2, wantE: 1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildDirectory(nil, tc.cons...)
			require.NoError(t, err)
			n, _ := g.LocationCount()
			require.Equal(t, tc.wantV, n)
			require.Equal(t, tc.wantE, g.ConnectionCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_PerConstructorOptions checks that overrides stay local to one constructor.
func TestBuilders_PerConstructorOptions(t *testing.T) {
	g, err := builder.BuildDirectory(
		[]builder.BuilderOption{builder.WithLevel(2), builder.WithCategory("office")},
		builder.Path(2, builder.WithIDScheme(builder.NumberedIDFn("A", 1))),
		builder.Path(2, builder.WithIDScheme(builder.NumberedIDFn("B", 1)), builder.WithLevel(5)),
	)
	require.NoError(t, err)

	a1, err := g.Location("A1")
	require.NoError(t, err)
	require.Equal(t, 2, a1.Level)
	require.Equal(t, "office", a1.Category)
	require.Equal(t, "A1", a1.Name, "names default to IDs")

	b2, err := g.Location("B2")
	require.NoError(t, err)
	require.Equal(t, 5, b2.Level)
}

// TestBuilders_Errors verifies sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	_, err := builder.BuildDirectory(nil, builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildDirectory(nil, builder.Star(0))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildDirectory(nil, builder.Chain("ONLY"))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildDirectory(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	// two paths with the default decimal scheme collide on "0"
	_, err = builder.BuildDirectory(nil, builder.Path(2), builder.Path(2))
	require.ErrorIs(t, err, core.ErrDuplicateLocation)

	_, err = builder.BuildDirectory(nil, builder.Locations(core.Location{ID: "A"}), builder.Chain("A", "A"))
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = builder.BuildDirectory(nil, builder.Connections(core.Connection{A: "NOPE", B: "NADA"}))
	require.ErrorIs(t, err, core.ErrLocationNotFound)
}

// TestOptions_Panics verifies option constructors fail fast on programmer error.
func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithNameScheme(nil) })
	require.Panics(t, func() { builder.WithHub(" ", "x", "y") })
	require.Panics(t, func() { builder.SymbolIDFn(26) })
}
