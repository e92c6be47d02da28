package route

import (
	"errors"
	"fmt"
)

// Sentinel errors carried in Result.Err.
var (
	// ErrInvalidInput indicates a blank start or target after normalization.
	ErrInvalidInput = errors.New("route: invalid input")

	// ErrUnknownLocation indicates at least one endpoint is not in the directory.
	ErrUnknownLocation = errors.New("route: unknown location")

	// ErrUnknownStart indicates the start is not in the directory. It wraps ErrUnknownLocation.
	ErrUnknownStart = fmt.Errorf("%w: start", ErrUnknownLocation)

	// ErrUnknownTarget indicates the target is not in the directory. It wraps ErrUnknownLocation.
	ErrUnknownTarget = fmt.Errorf("%w: target", ErrUnknownLocation)

	// ErrNoRoute indicates both endpoints exist but are not connected.
	ErrNoRoute = errors.New("route: no route found")

	// ErrDirectory indicates the directory failed while answering a query.
	ErrDirectory = errors.New("route: directory failure")

	// ErrAborted indicates the search stopped because its context ended.
	ErrAborted = errors.New("route: search aborted")

	// ErrNilDirectory is returned by NewEngine for a nil directory.
	ErrNilDirectory = errors.New("route: directory is nil")
)
