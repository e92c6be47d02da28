package builder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wayfinder/core"
)

// buildingFile is the on-disk shape of a building description.
type buildingFile struct {
	Locations   []core.Location `yaml:"locations"`
	Connections [][]string      `yaml:"connections"`
}

// FromYAML decodes a building description and builds its directory.
// Unknown keys and connections that are not exactly two IDs are rejected
// with ErrBadDataset; directory rule violations surface as core sentinels.
func FromYAML(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f buildingFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadDataset)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDataset, err)
	}
	if len(f.Locations) == 0 {
		return nil, fmt.Errorf("%w: no locations", ErrBadDataset)
	}

	pairs := make([]core.Connection, 0, len(f.Connections))
	for i, c := range f.Connections {
		if len(c) != 2 {
			return nil, fmt.Errorf("%w: connection #%d has %d ids, want 2", ErrBadDataset, i, len(c))
		}
		pairs = append(pairs, core.Connection{A: c[0], B: c[1]})
	}

	return BuildDirectory(nil, Locations(f.Locations...), Connections(pairs...))
}

// LoadFile reads a building description from path.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	g, err := FromYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Load resolves dataset as a preset name, or as a building file when it has a
// .yaml/.yml extension.
func Load(dataset string) (*core.Graph, error) {
	dataset = strings.TrimSpace(dataset)
	if _, ok := presets[dataset]; ok {
		return Preset(dataset)
	}
	switch strings.ToLower(filepath.Ext(dataset)) {
	case ".yaml", ".yml":
		return LoadFile(dataset)
	}
	return nil, fmt.Errorf("%w: %q (have %v or a .yaml file)", ErrUnknownPreset, dataset, Presets())
}
