// Package backend is the location service behind the campus navigator: it
// owns one loaded map and answers route queries against it.
//
// Concurrency: the graph is replaced wholesale on load and never mutated in
// place afterwards. Loads take the write lock only for the swap; queries
// share the read lock.
package backend

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/metrics"
)

// Query operation names, used as log fields and metric labels.
const (
	OpShortest = "shortest"
	OpTimes    = "times"
	OpTotal    = "total"
	OpLongest  = "longest"

	OpFewestStops = "fewest_stops"
	OpNearby      = "nearby"
)

// Backend answers location queries over one campus map.
type Backend struct {
	mu      sync.RWMutex
	graph   *core.Graph[string]
	index   *btree.BTreeG[string]
	source  string
	loaded  time.Time
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMetrics records query and load metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Backend) {
		b.metrics = m
	}
}

// New returns a Backend holding an empty map.
func New(opts ...Option) *Backend {
	b := &Backend{
		graph:  core.NewStringGraph(),
		index:  newIndex(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

func newIndex() *btree.BTreeG[string] {
	return btree.NewBTreeG[string](func(a, b string) bool { return a < b })
}

// LoadGraphData reads the edge-list file at path into a fresh graph and
// swaps it in. On failure the previous map stays in service.
func (b *Backend) LoadGraphData(path string) error {
	g := core.NewStringGraph()
	st, err := loader.LoadFile(path, g, loader.WithLogger(b.logger))
	b.metrics.ObserveLoad(err)
	if err != nil {
		b.logger.Error("graph load failed", "path", path, "error", err)
		return fmt.Errorf("backend: load graph data: %w", err)
	}

	b.ReplaceGraph(g, path)
	b.logger.Info("graph loaded",
		"path", path,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"lines", st.Lines,
		"skipped", st.Skipped,
	)

	return nil
}

// ReplaceGraph puts g in service. The caller must not mutate g afterwards.
func (b *Backend) ReplaceGraph(g *core.Graph[string], source string) {
	idx := newIndex()
	for _, id := range g.Nodes() {
		idx.Set(id)
	}

	b.mu.Lock()
	b.graph, b.index, b.source, b.loaded = g, idx, source, time.Now()
	b.mu.Unlock()

	b.metrics.SetGraphSize(g.NodeCount(), g.EdgeCount())
}

// Info describes the map currently in service.
type Info struct {
	Source   string
	LoadedAt time.Time
	Stats    core.GraphStats
}

// Info returns a snapshot of the map in service.
func (b *Backend) Info() Info {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return Info{Source: b.source, LoadedAt: b.loaded, Stats: b.graph.Stats()}
}

// Locations returns every location name in ascending order.
func (b *Backend) Locations() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.index.Items()
}

// HasLocation reports whether name is on the map.
func (b *Backend) HasLocation(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.graph.HasNode(name)
}

// Suggest returns up to limit location names starting with prefix, in
// ascending order. limit <= 0 means no limit.
func (b *Backend) Suggest(prefix string, limit int) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []string
	b.index.Ascend(prefix, func(name string) bool {
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		out = append(out, name)
		return limit <= 0 || len(out) < limit
	})

	return out
}

// LocationsOnShortestPath returns the locations along the fastest route
// from start to end, both included.
func (b *Backend) LocationsOnShortestPath(start, end string) ([]string, error) {
	p, err := b.shortest(OpShortest, start, end)
	if err != nil {
		return nil, err
	}
	return p.Nodes, nil
}

// TimesOnShortestPath returns the walking time of each segment of the
// fastest route; element i is the time from location i to location i+1.
func (b *Backend) TimesOnShortestPath(start, end string) ([]float64, error) {
	p, err := b.shortest(OpTimes, start, end)
	if err != nil {
		return nil, err
	}
	return p.Weights, nil
}

// TotalTime returns the walking time of the fastest route.
func (b *Backend) TotalTime(start, end string) (float64, error) {
	p, err := b.shortest(OpTotal, start, end)
	if err != nil {
		return 0, err
	}
	return p.Cost, nil
}

// ShortestPath returns the full route: locations, segment times and total.
func (b *Backend) ShortestPath(start, end string) (dijkstra.Path[string], error) {
	return b.shortest(OpShortest, start, end)
}

// LongestLocationListFrom returns, among the fastest routes from start to
// every reachable location, the one passing through the most locations.
func (b *Backend) LongestLocationListFrom(start string) ([]string, error) {
	began := time.Now()

	b.mu.RLock()
	p, err := dijkstra.LongestBranch(b.graph, start)
	b.mu.RUnlock()

	if err != nil {
		qe := classify(err, start, "")
		b.observe(OpLongest, qe, began)
		return nil, qe
	}
	b.observe(OpLongest, nil, began)

	return p.Nodes, nil
}

func (b *Backend) shortest(op, start, end string) (dijkstra.Path[string], error) {
	began := time.Now()

	b.mu.RLock()
	p, err := dijkstra.ShortestPath(b.graph, start, end)
	b.mu.RUnlock()

	if err != nil {
		qe := classify(err, start, end)
		b.observe(op, qe, began)
		return dijkstra.Path[string]{}, qe
	}
	b.observe(op, nil, began)

	return p, nil
}

// observe logs and records one query.
func (b *Backend) observe(op string, qe *QueryError, began time.Time) {
	elapsed := time.Since(began)
	outcome := metrics.OutcomeOK
	if qe != nil {
		outcome = outcomeOf(qe.Kind)
		b.logger.Debug("query failed", "op", op, "kind", qe.Kind.String(), "start", qe.Start, "end", qe.End)
	}
	b.metrics.ObserveQuery(op, outcome, elapsed)
}

func outcomeOf(k ErrorKind) string {
	switch k {
	case KindStartMissing, KindEndMissing, KindBothMissing:
		return metrics.OutcomeUnknownNode
	case KindNoPath:
		return metrics.OutcomeNoPath
	case KindNoReachable:
		return metrics.OutcomeNoReachable
	default:
		return metrics.OutcomeError
	}
}
