// Package frontend renders the HTML fragments of the campus navigator: the
// two query prompts and their responses. It owns no map state; every answer
// comes from the Backend it wraps.
package frontend

import (
	"html/template"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/campusnav/backend"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// Backend is the subset of the location service the fragments need.
type Backend interface {
	Locations() []string
	ShortestPath(start, end string) (dijkstra.Path[string], error)
	LongestLocationListFrom(start string) ([]string, error)
}

// User-facing error texts.
const (
	MsgInvalidStart = "Invalid start location. That start location does not exist."
	MsgInvalidEnd   = "Invalid end location. That end location does not exist."
	MsgNoPathsFound = "No paths found"
)

// MsgNoSuchPath returns the text shown when both ends exist but are not connected.
func MsgNoSuchPath(start, end string) string {
	return "There is no such path between " + start + " and " + end + "."
}

const fragments = `
{{- define "shortestPrompt" -}}
<input id="start" type="text" placeholder="Enter the start location"/>
<input id="end" type="text" placeholder="Enter the end location"/>
<input type="button" value="Find Shortest Path"/>
{{- end -}}

{{- define "longestPrompt" -}}
<input id="from" type="text" placeholder="Enter the start location"/>
<input type="button" value="Longest Location List From"/>
{{- end -}}

{{- define "errors" -}}
{{- range $i, $e := . }}{{ if $i }}
{{ end }}<p>Error: {{ $e }}</p>{{ end -}}
{{- end -}}

{{- define "list" -}}
<ol>
{{ range . }}	<li>{{ . }}</li>
{{ end }}</ol>
{{- end -}}

{{- define "shortestResponse" -}}
<p>The path starts at {{ .Start }} and ends at {{ .End }}</p>
{{ if .Errors }}{{ template "errors" .Errors }}{{ else }}{{ template "list" .Locations }}
<p>The total travel time along this path is {{ .Total }} seconds</p>{{ end }}
{{- end -}}

{{- define "longestResponse" -}}
{{ if .Errors }}{{ template "errors" .Errors }}{{ else -}}
<p>The path starts at {{ .Start }} and ends at {{ .End }}</p>
{{ template "list" .Locations }}
<p>The total number of locations on this path is {{ .Count }}</p>{{ end }}
{{- end -}}
`

var tmpl = template.Must(template.New("fragments").Parse(fragments))

// Frontend renders fragments against a Backend.
type Frontend struct {
	backend Backend
}

// New returns a Frontend over b.
func New(b Backend) *Frontend {
	return &Frontend{backend: b}
}

type responseData struct {
	Start, End string
	Locations  []string
	Total      string
	Count      int
	Errors     []string
}

// ShortestPathPromptHTML returns the inputs for a shortest-path query: a
// text field with id "start", one with id "end", and a button.
func (f *Frontend) ShortestPathPromptHTML() string {
	return render("shortestPrompt", nil)
}

// ShortestPathResponseHTML describes the fastest route from start to end:
// the endpoints, an ordered list of locations and the total travel time.
// On failure the list is replaced by one error line per missing location, or
// a single line when both exist but are not connected.
func (f *Frontend) ShortestPathResponseHTML(start, end string) string {
	data := responseData{Start: start, End: end}

	p, err := f.backend.ShortestPath(start, end)
	if err == nil {
		data.Locations = p.Nodes
		data.Total = formatSeconds(p.Cost)
		return render("shortestResponse", data)
	}

	startMissing, endMissing := f.missing(err, start, end)
	switch {
	case startMissing || endMissing:
		if startMissing {
			data.Errors = append(data.Errors, MsgInvalidStart)
		}
		if endMissing {
			data.Errors = append(data.Errors, MsgInvalidEnd)
		}
	default:
		data.Errors = []string{MsgNoSuchPath(start, end)}
	}

	return render("shortestResponse", data)
}

// LongestLocationListFromPromptHTML returns the input for a longest-list
// query: a text field with id "from" and a button.
func (f *Frontend) LongestLocationListFromPromptHTML() string {
	return render("longestPrompt", nil)
}

// LongestLocationListFromResponseHTML describes the fastest route from start
// that passes through the most locations, with the location count.
func (f *Frontend) LongestLocationListFromResponseHTML(start string) string {
	locs, err := f.backend.LongestLocationListFrom(start)
	if err != nil || len(locs) == 0 {
		msg := MsgNoPathsFound
		if startMissing, _ := f.missing(err, start, ""); startMissing {
			msg = MsgInvalidStart
		}
		return render("longestResponse", responseData{Start: start, Errors: []string{msg}})
	}

	return render("longestResponse", responseData{
		Start:     start,
		End:       locs[len(locs)-1],
		Locations: locs,
		Count:     len(locs),
	})
}

// missing reports which ends are absent. It trusts the backend's
// classification and falls back to the location list for other errors.
func (f *Frontend) missing(err error, start, end string) (startMissing, endMissing bool) {
	switch backend.KindOf(err) {
	case backend.KindStartMissing:
		return true, false
	case backend.KindEndMissing:
		return false, true
	case backend.KindBothMissing:
		return true, true
	case backend.KindNoPath, backend.KindNoReachable:
		return false, false
	}

	all := f.backend.Locations()
	startMissing = !slices.Contains(all, start)
	if end != "" {
		endMissing = !slices.Contains(all, end)
	}
	return startMissing, endMissing
}

func render(name string, data any) string {
	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		// Templates are fixed at compile time; a failure here is a programming error.
		panic("frontend: render " + name + ": " + err.Error())
	}
	return sb.String()
}

// formatSeconds prints whole numbers with one decimal ("8.0") and trims
// summation noise beyond microseconds.
func formatSeconds(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
