package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for directory operations.
var (
	// ErrEmptyLocationID indicates an identifier that is blank after normalization.
	ErrEmptyLocationID = errors.New("core: location ID is empty")

	// ErrLocationNotFound indicates an operation referenced an unknown location.
	ErrLocationNotFound = errors.New("core: location not found")

	// ErrDuplicateLocation indicates AddLocation was called for an existing identifier.
	ErrDuplicateLocation = errors.New("core: duplicate location")

	// ErrSelfLoop indicates a connection from a location to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Location is a named point of the building graph.
//
// ID is the normalized, immutable key. Name is the display name shown to
// users; Level is the floor ordinal (0 = ground floor) and Category is a
// free-form kind such as "classroom", "corridor" or "stairwell".
type Location struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Level       int    `json:"level" yaml:"level"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DisplayName returns Name, or the identifier when no name is set.
func (l Location) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Connection is an unordered, unit-cost adjacency between two locations.
// A and B are stored in declaration order; the relation itself is symmetric.
type Connection struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// Joins reports whether c connects x and y in either orientation.
func (c Connection) Joins(x, y string) bool {
	return (c.A == x && c.B == y) || (c.A == y && c.B == x)
}

// NormalizeID trims surrounding whitespace and upper-cases id.
// Every lookup boundary of the directory applies it.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Graph is the in-memory Directory.
//
// mu guards every field below. order keeps location insertion order,
// adjacency keeps per-location neighbor lists in connection insertion order.
type Graph struct {
	mu sync.RWMutex

	order       []string
	locations   map[string]Location
	adjacency   map[string][]string
	connections []Connection
}

// NewGraph creates an empty directory.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		locations: make(map[string]Location),
		adjacency: make(map[string][]string),
	}
}
