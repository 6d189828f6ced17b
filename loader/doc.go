// Package loader reads campus maps written as directed edge lists and
// replaces the contents of a core.Graph[string] with them.
//
// Format:
//
//	digraph campus {
//	    "Memorial Union" -> "Science Hall" [seconds=105.8];
//	    "Science Hall" -> "Memorial Union" [seconds=105.8];
//	}
//
// A line is an edge when it contains both "->" and "[seconds=". Endpoints are
// the trimmed text on either side of the arrow with one surrounding pair of
// double quotes removed; the weight is the number between "[seconds=" and the
// closing "]" (a trailing ";" is optional). Every other line, including the
// digraph header and closing brace, is skipped and counted in Stats.Skipped.
// Edge lines with an empty endpoint or an unparsable, negative or non-finite
// weight are skipped too.
//
// The target graph is cleared before the first line is read: loading is a
// full replace, never a merge. A failure to open or read the source returns a
// *ReadError naming the source, which matches ErrSourceRead under errors.Is.
package loader
