package route

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/wayfinder/bfs"
	"github.com/katalvlaran/wayfinder/core"
)

// Engine computes routes over a core.Directory. It holds no per-call state.
type Engine struct {
	dir     core.Directory
	log     *zap.Logger
	phrases Phrasebook
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-call debug records. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithPhrasebook selects the language descriptions are rendered in.
func WithPhrasebook(p Phrasebook) Option {
	return func(e *Engine) {
		e.phrases = p
	}
}

// NewEngine returns an Engine reading from dir.
func NewEngine(dir core.Directory, opts ...Option) (*Engine, error) {
	if dir == nil {
		return nil, ErrNilDirectory
	}
	e := &Engine{dir: dir, log: zap.NewNop(), phrases: English}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ComputeRoute finds a fewest-hop route from start to target. It never
// panics and never returns nil; see Result for how failures are reported.
func (e *Engine) ComputeRoute(ctx context.Context, start, target string) *Result {
	res := e.compute(ctx, start, target)
	if res.Success {
		e.log.Debug("route computed",
			zap.String("start", start), zap.String("target", target),
			zap.Int("hops", res.HopCount), zap.Ints("levels", res.Levels))
	} else {
		e.log.Debug("route failed",
			zap.String("start", start), zap.String("target", target),
			zap.String("kind", res.Kind()), zap.Error(res.Err))
	}
	return res
}

func (e *Engine) compute(ctx context.Context, start, target string) *Result {
	s, t := core.NormalizeID(start), core.NormalizeID(target)
	switch {
	case s == "" && t == "":
		return failure(ErrInvalidInput, e.phrases.BlankBoth)
	case s == "":
		return failure(fmt.Errorf("%w: blank start", ErrInvalidInput), e.phrases.BlankStart)
	case t == "":
		return failure(fmt.Errorf("%w: blank target", ErrInvalidInput), e.phrases.BlankTarget)
	}

	from, fromErr := e.dir.Location(s)
	to, toErr := e.dir.Location(t)
	if res := e.unknown(s, t, fromErr, toErr); res != nil {
		return res
	}

	if s == t {
		return &Result{
			Success:     true,
			Path:        []string{s},
			Description: fmt.Sprintf(e.phrases.AlreadyThere, from.DisplayName()),
			Levels:      []int{from.Level},
		}
	}

	opts := []bfs.Option{bfs.WithContext(ctx), bfs.WithTarget(t)}
	if limit := e.visitLimit(); limit > 0 {
		opts = append(opts, bfs.WithVisitLimit(limit))
	}
	search, err := bfs.BFS(e.dir, s, opts...)
	if err != nil {
		return e.searchFailure(err)
	}
	if !search.Reached {
		return failure(
			fmt.Errorf("%w: %s to %s", ErrNoRoute, s, t),
			fmt.Sprintf(e.phrases.NoRoute, from.DisplayName(), to.DisplayName()),
		)
	}
	path, err := search.PathTo(t)
	if err != nil {
		return e.directoryFailure(err)
	}

	stops := make([]core.Location, len(path))
	stops[0], stops[len(path)-1] = from, to
	for i := 1; i < len(path)-1; i++ {
		if stops[i], err = e.dir.Location(path[i]); err != nil {
			return e.directoryFailure(err)
		}
	}
	levels := pathLevels(stops)

	return &Result{
		Success:     true,
		Path:        path,
		Description: e.describe(stops, levels),
		HopCount:    len(path) - 1,
		Levels:      levels,
	}
}

// unknown returns a failed Result when either endpoint lookup failed.
func (e *Engine) unknown(s, t string, fromErr, toErr error) *Result {
	fromMissing := errors.Is(fromErr, core.ErrLocationNotFound)
	toMissing := errors.Is(toErr, core.ErrLocationNotFound)
	switch {
	case fromMissing && toMissing:
		return failure(
			errors.Join(fmt.Errorf("%w: %q", ErrUnknownStart, s), fmt.Errorf("%w: %q", ErrUnknownTarget, t)),
			fmt.Sprintf(e.phrases.UnknownBoth, s, t),
		)
	case fromMissing:
		return failure(fmt.Errorf("%w: %q", ErrUnknownStart, s), fmt.Sprintf(e.phrases.UnknownStart, s))
	case toMissing:
		return failure(fmt.Errorf("%w: %q", ErrUnknownTarget, t), fmt.Sprintf(e.phrases.UnknownTarget, t))
	case fromErr != nil:
		return e.directoryFailure(fromErr)
	case toErr != nil:
		return e.directoryFailure(toErr)
	}
	return nil
}

func (e *Engine) searchFailure(err error) *Result {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		wrapped := fmt.Errorf("%w: %w", ErrAborted, err)
		return failure(wrapped, fmt.Sprintf(e.phrases.Failure, err))
	}
	return e.directoryFailure(err)
}

func (e *Engine) directoryFailure(err error) *Result {
	e.log.Warn("directory failure during routing", zap.Error(err))
	return failure(fmt.Errorf("%w: %w", ErrDirectory, err), fmt.Sprintf(e.phrases.Failure, err))
}

// visitLimit returns the directory's location count, or 0 when unknown.
func (e *Engine) visitLimit() int {
	c, ok := e.dir.(core.Counter)
	if !ok {
		return 0
	}
	n, err := c.LocationCount()
	if err != nil {
		e.log.Warn("location count unavailable, search is unbounded", zap.Error(err))
		return 0
	}
	return n
}

// describe renders a path of two or more stops.
func (e *Engine) describe(stops []core.Location, levels []int) string {
	p := e.phrases
	lines := make([]string, 0, len(stops)+5)
	lines = append(lines, p.Header, "")
	for i, loc := range stops {
		format := p.Via
		switch i {
		case 0:
			format = p.Start
		case len(stops) - 1:
			format = p.Destination
		}
		line := fmt.Sprintf(format, loc.DisplayName())
		if loc.Category != "" {
			line += fmt.Sprintf(p.Category, loc.Category)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "")

	if hops := len(stops) - 1; hops == 1 {
		lines = append(lines, p.OneStep)
	} else {
		lines = append(lines, fmt.Sprintf(p.ManySteps, hops))
	}
	if len(levels) > 1 {
		names := make([]string, len(levels))
		for i, l := range levels {
			names[i] = strconv.Itoa(l)
		}
		lines = append(lines, fmt.Sprintf(p.Levels, len(levels), strings.Join(names, ", ")))
	}
	return strings.Join(lines, "\n")
}

func pathLevels(stops []core.Location) []int {
	levels := make([]int, 0, 2)
	for _, loc := range stops {
		levels = append(levels, loc.Level)
	}
	return core.SortedLevels(levels)
}

// Reachable returns every location reachable from start, in breadth-first
// order with start first.
func (e *Engine) Reachable(ctx context.Context, start string) ([]string, error) {
	s := core.NormalizeID(start)
	if s == "" {
		return nil, fmt.Errorf("%w: blank start", ErrInvalidInput)
	}
	if _, err := e.dir.Location(s); err != nil {
		if errors.Is(err, core.ErrLocationNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStart, s)
		}
		return nil, fmt.Errorf("%w: %w", ErrDirectory, err)
	}

	opts := []bfs.Option{bfs.WithContext(ctx)}
	if limit := e.visitLimit(); limit > 0 {
		opts = append(opts, bfs.WithVisitLimit(limit))
	}
	search, err := bfs.BFS(e.dir, s, opts...)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrAborted, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrDirectory, err)
	}
	return search.Order, nil
}
