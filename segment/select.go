// Package segment implements the Segmenter component: it decides, from
// loop and back-edge information, which real edges of the auxiliary
// graph must be cut so the graph becomes acyclic (spec.md §4.2).
//
// Segmenter itself never mutates AuxGraph; Select only produces the
// ordered cut list. The caller (the Encoder) passes that list to
// AuxGraph.Segment.
package segment

import (
	"github.com/RosenZhu/llvm-epp/auxgraph"
	"github.com/RosenZhu/llvm-epp/loopinfo"
)

// Select returns, in deterministic order, every real edge (u, v) of g
// that must be segmented: either (u, v) is a back edge, or u and v
// belong to different innermost loops (including the case where exactly
// one of them is in a loop at all) — spec.md §4.2's selection rule.
//
// Iteration follows g.Nodes() order, and within each block the order
// AuxGraph recorded the edges in, so two runs over the same graph and
// loop info always produce the same cut list.
func Select[B comparable](g *auxgraph.AuxGraph[B], info *loopinfo.Info[B]) []auxgraph.SegmentRequest[B] {
	isBackEdge := make(map[loopinfo.Edge[B]]bool, len(info.BackEdges))
	for _, e := range info.BackEdges {
		isBackEdge[e] = true
	}

	var cuts []auxgraph.SegmentRequest[B]
	for _, b := range g.Nodes() {
		for _, e := range g.Succs(b) {
			if !e.Real {
				continue
			}
			if shouldSegment(e.Src, e.Tgt, isBackEdge, info) {
				cuts = append(cuts, auxgraph.SegmentRequest[B]{Src: e.Src, Tgt: e.Tgt})
			}
		}
	}
	return cuts
}

func shouldSegment[B comparable](u, v B, isBackEdge map[loopinfo.Edge[B]]bool, info *loopinfo.Info[B]) bool {
	if isBackEdge[loopinfo.Edge[B]{Src: u, Tgt: v}] {
		return true
	}
	loopU, hasU := info.LoopOf(u)
	loopV, hasV := info.LoopOf(v)
	if hasU != hasV {
		return true
	}
	return hasU && loopU.Header != loopV.Header
}
