// Package auxgraph owns the auxiliary graph at the heart of Efficient Path
// Profiling: an acyclic, single-sink transform of a procedure's
// control-flow graph, built by segmenting back edges and cross-loop edges
// (Ball's segmentation technique layered on Ball–Larus path numbering).
//
// AuxGraph never inspects block contents. It observes only the successor
// relation and a name the caller assigns to the synthetic fake-exit block.
// Edges are owned by an arena internal to the graph and referenced
// elsewhere by pointer, so two edges with identical (src, tgt, real)
// fields remain distinct handles — exactly as spec.md's data model
// requires.
package auxgraph

import "github.com/RosenZhu/llvm-epp/bigcheck"

// FakeExitNamePrefix is the literal marker every FakeExit block's name
// must begin with (spec.md §3).
const FakeExitNamePrefix = "fake.exit"

// Procedure is the interface the core requires from the caller's
// procedure representation (spec.md §6, "Consumed").
//
// B is the caller's block identity type — typically a pointer, so that
// equality and hashing follow Go's native identity semantics. B must be
// comparable because AuxGraph indexes EdgeList by B.
type Procedure[B comparable] interface {
	// Entry returns the procedure's distinguished entry block.
	Entry() B

	// Succs returns b's successors in the original CFG, in a stable,
	// caller-determined order. AuxGraph preserves this order verbatim.
	Succs(b B) []B

	// Name returns a human-readable identity for b, used only for the
	// FakeExit marker check and for debug .dot output. The core never
	// otherwise inspects it.
	Name(b B) string

	// NewFakeExit creates and returns a fresh block of type B, distinct
	// from every block reachable from Entry, whose Name begins with
	// FakeExitNamePrefix. AuxGraph calls this exactly once per Init.
	NewFakeExit() B
}

// Edge is a directed pair (Src, Tgt) plus a Real flag. Real edges
// correspond to edges of the original CFG; synthetic edges (fake-exit
// edges and the two halves of a segmented edge) have Real == false.
//
// Edge values are never compared or copied by the core; an *Edge is the
// only stable handle, shared across EdgeList, Weights, and SegmentMap.
type Edge[B comparable] struct {
	Src, Tgt B
	Real     bool
}

// SegmentPair is the replacement AuxGraph records for a segmented edge
// A→B: the pair (A→FakeExit, Entry→B).
type SegmentPair[B comparable] struct {
	ToFakeExit *Edge[B]
	FromEntry  *Edge[B]
}

// WeightedEdge pairs a real edge with its assigned weight. GetWeights
// returns only entries with nonzero weight (spec.md §4.1).
type WeightedEdge[B comparable] struct {
	Edge   *Edge[B]
	Weight bigcheck.Int64
}

// AuxGraph is the acyclic, single-sink auxiliary graph built from a
// procedure's CFG. The zero value is not usable; construct with New.
type AuxGraph[B comparable] struct {
	entry    B
	hasEntry bool
	fakeExit B

	nodes []B // FakeExit, then the CFG's post-order: FakeExit first, Entry last

	edgeList map[B][]*Edge[B] // keyed by Src, insertion order preserved
	segMap   map[*Edge[B]]SegmentPair[B]
	weights  map[*Edge[B]]bigcheck.Int64

	name func(B) string
}

// New returns an empty AuxGraph. Call Init to populate it from a
// Procedure.
func New[B comparable]() *AuxGraph[B] {
	return &AuxGraph[B]{
		edgeList: make(map[B][]*Edge[B]),
		segMap:   make(map[*Edge[B]]SegmentPair[B]),
		weights:  make(map[*Edge[B]]bigcheck.Int64),
	}
}

// Nodes returns the stored node order: FakeExit first, original Entry
// last, a valid reverse topological order once segmentation has run.
func (g *AuxGraph[B]) Nodes() []B { return g.nodes }

// Entry returns the procedure's entry block.
func (g *AuxGraph[B]) Entry() B { return g.entry }

// FakeExit returns the synthetic sink block.
func (g *AuxGraph[B]) FakeExit() B { return g.fakeExit }

// IsFakeExit reports whether b is this graph's FakeExit block, by
// identity first and by the name marker as a cross-check (spec.md §4.3:
// "asserted via its name marker").
func (g *AuxGraph[B]) IsFakeExit(b B) bool {
	if b == g.fakeExit {
		return true
	}
	return g.name != nil && hasFakeExitPrefix(g.name(b))
}

func hasFakeExitPrefix(name string) bool {
	return len(name) >= len(FakeExitNamePrefix) && name[:len(FakeExitNamePrefix)] == FakeExitNamePrefix
}
