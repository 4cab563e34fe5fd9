// Package epp is the Encoder: the top-level entry point that drives
// AuxGraph.Init, the Segmenter, and Ball–Larus weight assignment over a
// single procedure (spec.md §4.3).
package epp

import (
	"io"

	"github.com/RosenZhu/llvm-epp/auxgraph"
	"github.com/RosenZhu/llvm-epp/bigcheck"
)

// State is a procedure's position in the Encoder's state machine
// (spec.md §4.3): Fresh -> Built -> Segmented -> Encoded | Overflowed.
type State uint8

const (
	Fresh State = iota
	Built
	Segmented
	Encoded
	Overflowed
)

// String renders the state name, chiefly for test failure messages.
func (s State) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case Built:
		return "Built"
	case Segmented:
		return "Segmented"
	case Encoded:
		return "Encoded"
	case Overflowed:
		return "Overflowed"
	default:
		return "Unknown"
	}
}

// EncoderConfig controls the Encoder's optional debug behavior. The zero
// value disables all of it: Encode runs with no side effects beyond its
// return value.
type EncoderConfig struct {
	// DumpGraphs enables writing the three conventional .dot snapshots
	// (auxgraph-1.dot after init, auxgraph-2.dot after segmentation,
	// auxgraph-3.dot after weight assignment) through DotSink.
	DumpGraphs bool

	// DotSink names and opens the writer for a given snapshot name (for
	// example "auxgraph-1.dot"). Required when DumpGraphs is true.
	DotSink func(name string) io.WriteCloser

	// CompressDumps wraps each .dot snapshot with an s2 writer before it
	// reaches DotSink, for callers retaining dumps for every procedure in
	// a large package.
	CompressDumps bool
}

// Result is everything Encode produces for one procedure: the total path
// count, the weight assigned to every real edge worth instrumenting, the
// segmentation mapping, and the terminal state reached.
type Result[B comparable] struct {
	TotalPaths  bigcheck.Int64
	EdgeWeights []auxgraph.WeightedEdge[B]
	SegmentMap  map[*auxgraph.Edge[B]]auxgraph.SegmentPair[B]
	State       State
}
