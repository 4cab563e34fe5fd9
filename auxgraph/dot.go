// File: dot.go
// Role: optional Graphviz debug dumps (spec.md §6). The core never writes
// these on its own; a caller opts in by passing a sink.

package auxgraph

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dot writes a Graphviz "digraph" representation of g to w: nodes by
// identity (via Name), real edges solid, non-real (synthetic) edges
// colored red.
func (g *AuxGraph[B]) Dot(w io.Writer) error {
	return g.writeDot(w, false)
}

// DotW is Dot plus an edge label for each edge's assigned weight.
func (g *AuxGraph[B]) DotW(w io.Writer) error {
	return g.writeDot(w, true)
}

func (g *AuxGraph[B]) writeDot(w io.Writer, labelWeights bool) error {
	if _, err := fmt.Fprintln(w, "digraph auxgraph {"); err != nil {
		return err
	}
	for _, b := range g.nodes {
		for _, e := range g.Succs(b) {
			var attrs []string
			if !e.Real {
				attrs = append(attrs, "color=red")
			}
			if labelWeights {
				if weight, ok := g.weights[e]; ok {
					attrs = append(attrs, fmt.Sprintf("label=%q", strconv.FormatInt(weight.Int64(), 10)))
				}
			}
			suffix := ""
			if len(attrs) > 0 {
				suffix = " [" + strings.Join(attrs, ",") + "]"
			}
			if _, err := fmt.Fprintf(w, "\t%q -> %q%s;\n", g.name(e.Src), g.name(e.Tgt), suffix); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
