// Package: wayfinder/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Option constructors (WithX...) panic on programmer error; constructors never panic.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a constructor could not apply its mutation
// (nil constructor, rejected location or connection).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates Preset or Load received a name that is neither a
// known dataset nor a building file path.
var ErrUnknownPreset = errors.New("builder: unknown preset")

// ErrBadDataset indicates a malformed building file.
var ErrBadDataset = errors.New("builder: malformed dataset")
