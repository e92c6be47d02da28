package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wayfinder/core"
)

// Preset names accepted by Preset and Load.
const (
	PresetCorridor = "corridor"
	PresetHub      = "hub"
)

var presets = map[string]func() (*core.Graph, error){
	PresetCorridor: Corridor,
	PresetHub:      Hub,
}

// Presets lists the built-in dataset names in ascending order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset builds the named built-in dataset.
func Preset(name string) (*core.Graph, error) {
	fn, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, Presets())
	}
	return fn()
}

// Corridor is the third-floor hallway: Room 132 through Room 137 in a row.
func Corridor() (*core.Graph, error) {
	return BuildDirectory(
		[]BuilderOption{WithLevel(3), WithCategory("classroom")},
		Path(6,
			WithIDScheme(NumberedIDFn("R", 132)),
			WithNameScheme(NumberedNameFn("Room ", 132)),
		),
	)
}

// Hub is a two-floor building: an entrance hall and a first-floor hall, each
// with three classrooms around it, joined by a stairwell. A basement boiler
// room is registered but has no public connection.
func Hub() (*core.Graph, error) {
	return BuildDirectory(
		[]BuilderOption{WithCategory("classroom")},
		Star(4,
			WithLevel(0),
			WithHub("HALL0", "Entrance Hall", "hall"),
			WithIDScheme(NumberedIDFn("R0", 0)),
			WithNameScheme(NumberedNameFn("Room 0", 0)),
		),
		Star(4,
			WithLevel(1),
			WithHub("HALL1", "First Floor Hall", "hall"),
			WithIDScheme(NumberedIDFn("R", 100)),
			WithNameScheme(NumberedNameFn("Room ", 100)),
		),
		Locations(
			core.Location{ID: "ST0", Name: "Stairwell (ground floor)", Level: 0, Category: "stairwell"},
			core.Location{ID: "ST1", Name: "Stairwell (first floor)", Level: 1, Category: "stairwell"},
			core.Location{ID: "BOILER", Name: "Boiler Room", Level: -1, Category: "technical", Description: "No public access"},
		),
		Chain("HALL0", "ST0", "ST1", "HALL1"),
	)
}
