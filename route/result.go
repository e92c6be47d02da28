package route

import "errors"

// Result is the outcome of one ComputeRoute call. It is built fresh for every
// call and never modified after it is returned.
//
// On success Path runs from start to target, HopCount is len(Path)-1 and
// Levels lists the distinct levels the path touches, ascending. On failure
// Path and Levels are empty, HopCount is 0 and Err holds one of the package
// sentinels. Description is human readable in both cases.
type Result struct {
	Success     bool     `json:"success"`
	Path        []string `json:"path"`
	Description string   `json:"description"`
	HopCount    int      `json:"hop_count"`
	Levels      []int    `json:"levels"`
	Err         error    `json:"-"`
}

// Failure kinds reported by Kind.
const (
	KindOK              = "ok"
	KindInvalidInput    = "invalid_input"
	KindUnknownLocation = "unknown_location"
	KindNoRoute         = "no_route"
	KindAborted         = "aborted"
	KindDirectory       = "directory_error"
)

// Kind classifies r for transports that cannot carry Err.
func (r *Result) Kind() string {
	switch {
	case r.Success:
		return KindOK
	case errors.Is(r.Err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(r.Err, ErrUnknownLocation):
		return KindUnknownLocation
	case errors.Is(r.Err, ErrNoRoute):
		return KindNoRoute
	case errors.Is(r.Err, ErrAborted):
		return KindAborted
	default:
		return KindDirectory
	}
}

func failure(err error, description string) *Result {
	return &Result{
		Path:        []string{},
		Levels:      []int{},
		Description: description,
		Err:         err,
	}
}
