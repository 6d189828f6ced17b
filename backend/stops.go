package backend

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
)

// ErrBadStops is returned by Nearby for a non-positive stop limit.
var ErrBadStops = errors.New("backend: stops must be positive")

// errReached stops a walk once the target is visited.
var errReached = errors.New("backend: target reached")

// FewestStops returns the route from start to end that passes through the
// fewest locations, ignoring walking times. Among equally short routes the
// one found first in map insertion order wins.
func (b *Backend) FewestStops(start, end string) ([]string, error) {
	began := time.Now()

	b.mu.RLock()
	route, qe := fewestStops(b.graph, start, end)
	b.mu.RUnlock()

	b.observe(OpFewestStops, qe, began)
	if qe != nil {
		return nil, qe
	}

	return route, nil
}

// Nearby lists the locations reachable from start within stops walking
// segments, nearest first, start excluded.
func (b *Backend) Nearby(start string, stops int) ([]string, error) {
	if stops < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadStops, stops)
	}
	began := time.Now()

	b.mu.RLock()
	walk, err := bfs.Walk(b.graph, start, bfs.WithMaxDepth[string](stops))
	b.mu.RUnlock()

	if err != nil {
		qe := &QueryError{Start: start, Err: err}
		if errors.Is(err, bfs.ErrStartVertexNotFound) {
			qe.Kind = KindStartMissing
		}
		b.observe(OpNearby, qe, began)
		return nil, qe
	}
	b.observe(OpNearby, nil, began)

	out := make([]string, 0, len(walk.Order)-1)
	out = append(out, walk.Order[1:]...)

	return out, nil
}

func fewestStops(g *core.Graph[string], start, end string) ([]string, *QueryError) {
	qe := &QueryError{Start: start, End: end, Err: core.ErrUnknownNode}
	startOK, endOK := g.HasNode(start), g.HasNode(end)
	switch {
	case !startOK && !endOK:
		qe.Kind = KindBothMissing
		return nil, qe
	case !startOK:
		qe.Kind = KindStartMissing
		return nil, qe
	case !endOK:
		qe.Kind = KindEndMissing
		return nil, qe
	}

	walk, err := bfs.Walk(g, start, bfs.WithOnVisit(func(id string, _ int) error {
		if id == end {
			return errReached
		}
		return nil
	}))
	if err != nil && !errors.Is(err, errReached) {
		qe.Err = err
		return nil, qe
	}

	route, err := walk.PathTo(end)
	if err != nil {
		qe.Kind, qe.Err = KindNoPath, err
		return nil, qe
	}

	return route, nil
}
