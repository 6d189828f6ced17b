package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/campusnav/core"
)

const (
	arrow        = "->"
	weightMarker = "[seconds="
	maxLineBytes = 1 << 20
)

// ErrSourceRead matches any *ReadError.
var ErrSourceRead = errors.New("loader: source read failure")

// ReadError reports that the named source could not be opened or read.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("loader: read %q: %v", e.Source, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *ReadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrSourceRead.
func (e *ReadError) Is(target error) bool { return target == ErrSourceRead }

// Stats summarizes one load.
type Stats struct {
	Lines   int // lines read, blank ones included
	Edges   int // edge lines applied to the graph
	Skipped int // non-blank lines that were not applied
}

// Option configures Load and LoadFile.
type Option func(*options)

type options struct {
	logger *slog.Logger
	source string
}

// WithLogger logs every skipped line at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSourceName sets the name reported in a *ReadError for Load.
// LoadFile uses the file path.
func WithSourceName(name string) Option {
	return func(o *options) {
		o.source = name
	}
}

// LoadFile opens path and loads it into g. See Load.
func LoadFile(path string, g *core.Graph[string], opts ...Option) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, &ReadError{Source: path, Err: err}
	}
	defer f.Close()

	return Load(f, g, append(opts, WithSourceName(path))...)
}

// Load reads every well-formed edge line from r and replaces the
// contents of g with them. Both endpoints are added as nodes before the
// edge. A repeated pair overwrites the earlier weight.
//
// The whole input is parsed before g is cleared: on a *ReadError g is
// left exactly as it was.
func Load(r io.Reader, g *core.Graph[string], opts ...Option) (Stats, error) {
	o := options{
		logger: slog.New(slog.DiscardHandler),
		source: "input",
	}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		st    Stats
		edges []edgeLine
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		st.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		from, to, w, reason := parseLine(line)
		if reason != "" {
			st.Skipped++
			o.logger.Debug("skipping line", "source", o.source, "line", st.Lines, "reason", reason)
			continue
		}
		edges = append(edges, edgeLine{n: st.Lines, from: from, to: to, weight: w})
	}
	if err := sc.Err(); err != nil {
		return st, &ReadError{Source: o.source, Err: err}
	}

	g.Clear()
	for _, e := range edges {
		if err := insert(g, e.from, e.to, e.weight); err != nil {
			st.Skipped++
			o.logger.Debug("skipping line", "source", o.source, "line", e.n, "reason", err.Error())
			continue
		}
		st.Edges++
	}

	return st, nil
}

// edgeLine is one parsed edge waiting to be applied.
type edgeLine struct {
	n        int
	from, to string
	weight   float64
}

// parseLine splits one trimmed line. A non-empty reason means the line is skipped.
func parseLine(line string) (from, to string, weight float64, reason string) {
	if !strings.Contains(line, arrow) || !strings.Contains(line, weightMarker) {
		return "", "", 0, "not an edge line"
	}
	left, right, _ := strings.Cut(line, arrow)
	dst, raw, ok := strings.Cut(right, weightMarker)
	if !ok {
		return "", "", 0, "weight marker before arrow"
	}

	from = unquote(strings.TrimSpace(left))
	to = unquote(strings.TrimSpace(dst))
	if from == "" || to == "" {
		return "", "", 0, "empty endpoint"
	}

	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, ";")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "]")
	w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", "", 0, "unparsable weight"
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return "", "", 0, "weight out of range"
	}

	return from, to, w, ""
}

// unquote removes one leading and one trailing double quote, if present.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func insert(g *core.Graph[string], from, to string, w float64) error {
	if _, err := g.AddNode(from); err != nil {
		return err
	}
	if _, err := g.AddNode(to); err != nil {
		return err
	}

	return g.AddEdge(from, to, w)
}
