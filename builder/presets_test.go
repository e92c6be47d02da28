package builder_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/builder"
	"github.com/katalvlaran/wayfinder/core"
)

// TestPreset_Corridor locks in the single-floor chain R132…R137.
func TestPreset_Corridor(t *testing.T) {
	g, err := builder.Preset(builder.PresetCorridor)
	require.NoError(t, err)
	require.Equal(t, []string{"R132", "R133", "R134", "R135", "R136", "R137"}, ids(t, g))
	require.Equal(t, 5, g.ConnectionCount())

	r134, err := g.Location("r134")
	require.NoError(t, err)
	require.Equal(t, core.Location{ID: "R134", Name: "Room 134", Level: 3, Category: "classroom"}, r134)

	nb, err := g.Neighbors("R133")
	require.NoError(t, err)
	require.Equal(t, []string{"R132", "R134"}, nb)
}

// TestPreset_Hub locks in the two-floor hub-and-spoke building.
func TestPreset_Hub(t *testing.T) {
	g, err := builder.Preset(builder.PresetHub)
	require.NoError(t, err)
	require.Equal(t,
		[]string{"HALL0", "R01", "R02", "R03", "HALL1", "R101", "R102", "R103", "ST0", "ST1", "BOILER"},
		ids(t, g))

	nb, err := g.Neighbors("HALL0")
	require.NoError(t, err)
	require.Equal(t, []string{"R01", "R02", "R03", "ST0"}, nb)

	boiler, err := g.Neighbors("BOILER")
	require.NoError(t, err)
	require.Empty(t, boiler)

	st, err := g.Stats()
	require.NoError(t, err)
	require.Equal(t, []int{-1, 0, 1}, st.Levels)
	require.Equal(t, 6, st.Categories["classroom"])
	require.Equal(t, 2, st.Categories["stairwell"])
}

// TestPreset_Unknown checks the sentinel and the advertised names.
func TestPreset_Unknown(t *testing.T) {
	_, err := builder.Preset("castle")
	require.ErrorIs(t, err, builder.ErrUnknownPreset)
	require.Equal(t, []string{"corridor", "hub"}, builder.Presets())
}

const libraryYAML = `
locations:
  - {id: lib, name: Library, level: 0, category: room}
  - {id: c1, name: Corridor, level: 0, category: corridor}
  - {id: st, name: Stairs, level: 1, category: stairwell, description: North stairs}
connections:
  - [lib, c1]
  - [c1, st]
`

// TestFromYAML decodes a small building file.
func TestFromYAML(t *testing.T) {
	g, err := builder.FromYAML(strings.NewReader(libraryYAML))
	require.NoError(t, err)
	require.Equal(t, []string{"LIB", "C1", "ST"}, ids(t, g))
	require.True(t, g.HasConnection("st", "C1"))

	st, err := g.Location("ST")
	require.NoError(t, err)
	require.Equal(t, "North stairs", st.Description)
}

// TestFromYAML_Errors covers malformed documents.
func TestFromYAML_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":         ``,
		"no locations":  "connections: []\n",
		"unknown field": "locations:\n  - {id: A}\nfloors: 3\n",
		"bad pair":      "locations:\n  - {id: A}\n  - {id: B}\nconnections:\n  - [A, B, A]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.FromYAML(strings.NewReader(doc))
			require.ErrorIs(t, err, builder.ErrBadDataset)
		})
	}

	_, err := builder.FromYAML(strings.NewReader("locations:\n  - {id: A}\nconnections:\n  - [A, Z]\n"))
	require.ErrorIs(t, err, core.ErrLocationNotFound)
}

// TestLoad resolves presets and files.
func TestLoad(t *testing.T) {
	g, err := builder.Load(" hub ")
	require.NoError(t, err)
	require.True(t, g.HasLocation("HALL1"))

	path := filepath.Join(t.TempDir(), "library.yml")
	require.NoError(t, os.WriteFile(path, []byte(libraryYAML), 0o600))
	g, err = builder.Load(path)
	require.NoError(t, err)
	require.True(t, g.HasLocation("LIB"))

	_, err = builder.Load("library.json")
	require.ErrorIs(t, err, builder.ErrUnknownPreset)

	_, err = builder.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
