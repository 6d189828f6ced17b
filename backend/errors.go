package backend

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/dijkstra"
)

// ErrorKind classifies a failed location query.
type ErrorKind int

const (
	// KindUnknown is any failure that is not a query outcome.
	KindUnknown ErrorKind = iota
	// KindStartMissing means the start location is not on the map.
	KindStartMissing
	// KindEndMissing means the end location is not on the map.
	KindEndMissing
	// KindBothMissing means neither location is on the map.
	KindBothMissing
	// KindNoPath means both locations exist but no route connects them.
	KindNoPath
	// KindNoReachable means nothing else can be reached from the start.
	KindNoReachable
)

func (k ErrorKind) String() string {
	switch k {
	case KindStartMissing:
		return "start_missing"
	case KindEndMissing:
		return "end_missing"
	case KindBothMissing:
		return "both_missing"
	case KindNoPath:
		return "no_path"
	case KindNoReachable:
		return "no_reachable"
	default:
		return "unknown"
	}
}

// QueryError is returned by every query method on failure. Unwrap exposes
// the engine error, so errors.Is(err, dijkstra.ErrPathNotFound) still holds.
type QueryError struct {
	Kind  ErrorKind
	Start string
	End   string // empty for single-location queries
	Err   error
}

func (e *QueryError) Error() string {
	switch e.Kind {
	case KindStartMissing:
		return fmt.Sprintf("backend: start location %q does not exist", e.Start)
	case KindEndMissing:
		return fmt.Sprintf("backend: end location %q does not exist", e.End)
	case KindBothMissing:
		return fmt.Sprintf("backend: locations %q and %q do not exist", e.Start, e.End)
	case KindNoPath:
		return fmt.Sprintf("backend: no path from %q to %q", e.Start, e.End)
	case KindNoReachable:
		return fmt.Sprintf("backend: no location reachable from %q", e.Start)
	default:
		return fmt.Sprintf("backend: query failed: %v", e.Err)
	}
}

// Unwrap returns the engine error.
func (e *QueryError) Unwrap() error { return e.Err }

// classify maps an engine error onto a *QueryError.
func classify(err error, start, end string) *QueryError {
	qe := &QueryError{Start: start, End: end, Err: err}
	startMissing := errors.Is(err, dijkstra.ErrStartNotFound)
	endMissing := errors.Is(err, dijkstra.ErrEndNotFound)
	switch {
	case startMissing && endMissing:
		qe.Kind = KindBothMissing
	case startMissing:
		qe.Kind = KindStartMissing
	case endMissing:
		qe.Kind = KindEndMissing
	case errors.Is(err, dijkstra.ErrPathNotFound):
		qe.Kind = KindNoPath
	case errors.Is(err, dijkstra.ErrNoReachableNodes):
		qe.Kind = KindNoReachable
	}

	return qe
}

// KindOf returns the ErrorKind carried by err, or KindUnknown.
func KindOf(err error) ErrorKind {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return KindUnknown
}
