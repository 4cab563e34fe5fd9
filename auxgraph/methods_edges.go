// File: methods_edges.go
// Role: edge arena primitives — Add/Exists/GetOrInsertEdge/Succs.
//
// Concurrency: none. A single AuxGraph is built and queried by one
// goroutine at a time (spec.md §5); callers that want parallelism give
// each procedure its own AuxGraph instead of sharing one.

package auxgraph

import "github.com/RosenZhu/llvm-epp/bigcheck"

// Add allocates a new edge src→tgt and appends it to EdgeList[src],
// returning a stable handle. The handle's identity is independent of its
// fields: calling Add twice with identical arguments yields two distinct
// edges.
func (g *AuxGraph[B]) Add(src, tgt B, real bool) *Edge[B] {
	e := &Edge[B]{Src: src, Tgt: tgt, Real: real}
	g.edgeList[src] = append(g.edgeList[src], e)
	return e
}

// Exists returns the first edge among src's successors matching
// (tgt, real), or nil if none matches.
func (g *AuxGraph[B]) Exists(src, tgt B, real bool) *Edge[B] {
	for _, e := range g.edgeList[src] {
		if e.Tgt == tgt && e.Real == real {
			return e
		}
	}
	return nil
}

// GetOrInsertEdge returns the existing src→tgt edge matching real if one
// exists, else creates and returns a new one.
func (g *AuxGraph[B]) GetOrInsertEdge(src, tgt B, real bool) *Edge[B] {
	if e := g.Exists(src, tgt, real); e != nil {
		return e
	}
	return g.Add(src, tgt, real)
}

// Succs returns src's outgoing edges in insertion order. Unknown blocks
// return an empty (nil) slice, never an error — a block with no recorded
// successors is a legitimate leaf.
func (g *AuxGraph[B]) Succs(src B) []*Edge[B] {
	return g.edgeList[src]
}

// GetSegmentMap returns the segmentation table: for each segmented
// original edge, the (A→FakeExit, Entry→B) replacement pair.
func (g *AuxGraph[B]) GetSegmentMap() map[*Edge[B]]SegmentPair[B] {
	return g.segMap
}

// GetEdgeWeight returns the weight assigned to e, if any.
func (g *AuxGraph[B]) GetEdgeWeight(e *Edge[B]) (weight int64, ok bool) {
	w, ok := g.weights[e]
	return w.Int64(), ok
}

// SetWeight records w as e's weight. Called by the Encoder during weight
// assignment (spec.md §4.3); AuxGraph itself never computes weights.
func (g *AuxGraph[B]) SetWeight(e *Edge[B], w bigcheck.Int64) {
	g.weights[e] = w
}

// GetWeights returns only the real edges with a nonzero assigned weight —
// exactly the edges an instrumentation collaborator needs a counter
// increment on (spec.md §4.1).
func (g *AuxGraph[B]) GetWeights() []WeightedEdge[B] {
	var out []WeightedEdge[B]
	for _, b := range g.nodes {
		for _, e := range g.edgeList[b] {
			if !e.Real {
				continue
			}
			if w, ok := g.weights[e]; ok && w != bigcheck.Zero {
				out = append(out, WeightedEdge[B]{Edge: e, Weight: w})
			}
		}
	}
	return out
}

// Clear resets all tables, releasing the arena. The graph may be reused
// via Init afterward.
func (g *AuxGraph[B]) Clear() {
	g.nodes = nil
	g.edgeList = make(map[B][]*Edge[B])
	g.segMap = make(map[*Edge[B]]SegmentPair[B])
	g.weights = make(map[*Edge[B]]bigcheck.Int64)
	g.hasEntry = false
	var zero B
	g.entry, g.fakeExit = zero, zero
	g.name = nil
}
