// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in identifier normalization at every lookup boundary.
//   - Validate connection symmetry, idempotence and self-loop rejection.
//   - Anchor ordering guarantees (Locations and Neighbors in insertion order).

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/wayfinder/core"
)

// newCorridor builds A–B–C–D on level 1 plus an isolated E on level 2.
func newCorridor(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, loc := range []core.Location{
		{ID: "A", Name: "Room A", Level: 1, Category: "classroom"},
		{ID: "B", Name: "Corridor B", Level: 1, Category: "corridor"},
		{ID: "C", Name: "Corridor C", Level: 1, Category: "corridor"},
		{ID: "D", Name: "Room D", Level: 1, Category: "classroom"},
		{ID: "E", Name: "Attic", Level: 2},
	} {
		if err := g.AddLocation(loc); err != nil {
			t.Fatalf("AddLocation(%s): %v", loc.ID, err)
		}
	}
	for _, c := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		if err := g.Connect(c[0], c[1]); err != nil {
			t.Fatalf("Connect(%s,%s): %v", c[0], c[1], err)
		}
	}
	return g
}

// TestGraph_AddLocation verifies normalization, blank rejection and duplicate rejection.
func TestGraph_AddLocation(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddLocation(core.Location{ID: "   "}); !errors.Is(err, core.ErrEmptyLocationID) {
		t.Fatalf("blank ID: want ErrEmptyLocationID, got %v", err)
	}
	if err := g.AddLocation(core.Location{ID: " r132 ", Name: "Room 132"}); err != nil {
		t.Fatalf("AddLocation: %v", err)
	}
	if err := g.AddLocation(core.Location{ID: "R132"}); !errors.Is(err, core.ErrDuplicateLocation) {
		t.Fatalf("duplicate: want ErrDuplicateLocation, got %v", err)
	}
	loc, err := g.Location("R132")
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc.ID != "R132" || loc.Name != "Room 132" {
		t.Errorf("Location = %+v; want normalized ID R132 and name Room 132", loc)
	}
	if !g.HasLocation("\tr132\n") {
		t.Error("HasLocation should normalize its argument")
	}
	if g.HasLocation("") {
		t.Error("HasLocation(\"\") = true; want false")
	}
}

// TestGraph_LocationErrors checks the two lookup failures.
func TestGraph_LocationErrors(t *testing.T) {
	g := newCorridor(t)
	if _, err := g.Location(""); !errors.Is(err, core.ErrEmptyLocationID) {
		t.Errorf("blank: want ErrEmptyLocationID, got %v", err)
	}
	if _, err := g.Location("Z"); !errors.Is(err, core.ErrLocationNotFound) {
		t.Errorf("unknown: want ErrLocationNotFound, got %v", err)
	}
}

// TestGraph_ConnectSymmetric verifies that one Connect call is traversable both ways
// and that a repeat in the opposite orientation is a no-op.
func TestGraph_ConnectSymmetric(t *testing.T) {
	g := newCorridor(t)
	if !g.HasConnection("b", "a") || !g.HasConnection("A", "B") {
		t.Fatal("A–B must be traversable in both directions")
	}
	if err := g.Connect("b", "a"); err != nil {
		t.Fatalf("repeat Connect: %v", err)
	}
	if got := g.ConnectionCount(); got != 3 {
		t.Errorf("ConnectionCount = %d; want 3", got)
	}
	nb, _ := g.Neighbors("A")
	if !reflect.DeepEqual(nb, []string{"B"}) {
		t.Errorf("Neighbors(A) = %v; want [B]", nb)
	}
	first := g.Connections()[0]
	if !first.Joins("A", "B") || !first.Joins("B", "A") {
		t.Errorf("Connections()[0] = %v; want it to join A and B", first)
	}
	if first.Joins("A", "C") {
		t.Errorf("%v must not join A and C", first)
	}
}

// TestGraph_ConnectErrors covers self-loops, blanks and unknown endpoints.
func TestGraph_ConnectErrors(t *testing.T) {
	g := newCorridor(t)
	if err := g.Connect("A", " a"); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("self-loop: want ErrSelfLoop, got %v", err)
	}
	if err := g.Connect("A", ""); !errors.Is(err, core.ErrEmptyLocationID) {
		t.Errorf("blank: want ErrEmptyLocationID, got %v", err)
	}
	if err := g.Connect("A", "Z"); !errors.Is(err, core.ErrLocationNotFound) {
		t.Errorf("unknown: want ErrLocationNotFound, got %v", err)
	}
	if g.HasConnection("A", "Z") {
		t.Error("failed Connect must not leave a half edge")
	}
}

// TestGraph_Neighbors checks ordering, isolated vertices and copy semantics.
func TestGraph_Neighbors(t *testing.T) {
	g := newCorridor(t)
	nb, err := g.Neighbors(" c ")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B", "D"}; !reflect.DeepEqual(nb, want) {
		t.Errorf("Neighbors(C) = %v; want %v", nb, want)
	}
	nb[0] = "mutated"
	again, _ := g.Neighbors("C")
	if again[0] != "B" {
		t.Error("Neighbors must return a copy")
	}

	iso, err := g.Neighbors("E")
	if err != nil || iso == nil || len(iso) != 0 {
		t.Errorf("Neighbors(E) = %v, %v; want empty non-nil slice and nil error", iso, err)
	}
	if _, err := g.Neighbors("Z"); !errors.Is(err, core.ErrLocationNotFound) {
		t.Errorf("unknown: want ErrLocationNotFound, got %v", err)
	}
}

// TestGraph_LocationsOrder asserts insertion order is preserved.
func TestGraph_LocationsOrder(t *testing.T) {
	g := newCorridor(t)
	locs, err := g.Locations()
	if err != nil {
		t.Fatal(err)
	}
	ids := make([]string, 0, len(locs))
	for _, l := range locs {
		ids = append(ids, l.ID)
	}
	if want := []string{"A", "B", "C", "D", "E"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("Locations order = %v; want %v", ids, want)
	}
	if n, _ := g.LocationCount(); n != 5 {
		t.Errorf("LocationCount = %d; want 5", n)
	}
}

// TestGraph_Stats checks level and category aggregation.
func TestGraph_Stats(t *testing.T) {
	g := newCorridor(t)
	st, err := g.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Locations != 5 || st.Connections != 3 {
		t.Errorf("Stats counts = %d/%d; want 5/3", st.Locations, st.Connections)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(st.Levels, want) {
		t.Errorf("Levels = %v; want %v", st.Levels, want)
	}
	if st.Categories["classroom"] != 2 || st.Categories["corridor"] != 2 || st.Categories[""] != 1 {
		t.Errorf("Categories = %v", st.Categories)
	}
}

// TestGroupByLevel verifies bucketing and per-bucket name ordering.
func TestGroupByLevel(t *testing.T) {
	g := newCorridor(t)
	locs, _ := g.Locations()
	grouped := core.GroupByLevel(locs)
	if len(grouped) != 2 {
		t.Fatalf("levels = %d; want 2", len(grouped))
	}
	var names []string
	for _, l := range grouped[1] {
		names = append(names, l.DisplayName())
	}
	if want := []string{"Corridor B", "Corridor C", "Room A", "Room D"}; !reflect.DeepEqual(names, want) {
		t.Errorf("level 1 = %v; want %v", names, want)
	}
}

// TestSortedLevels covers dedup and ordering.
func TestSortedLevels(t *testing.T) {
	if got := core.SortedLevels([]int{3, -1, 3, 0, 2}); !reflect.DeepEqual(got, []int{-1, 0, 2, 3}) {
		t.Errorf("SortedLevels = %v", got)
	}
	if got := core.SortedLevels(nil); len(got) != 0 {
		t.Errorf("SortedLevels(nil) = %v; want empty", got)
	}
}

// TestLocation_DisplayName falls back to the ID.
func TestLocation_DisplayName(t *testing.T) {
	if got := (core.Location{ID: "X"}).DisplayName(); got != "X" {
		t.Errorf("DisplayName = %q; want X", got)
	}
}

var _ core.Catalog = (*core.Graph)(nil)
