// File: methods_segment.go
// Role: Segment — replaces selected real edges with the
// (A→FakeExit, Entry→B) pair, recording the mapping (spec.md §4.1).

package auxgraph

// SegmentRequest names one real edge A→B to cut, as selected by the
// Segmenter component.
type SegmentRequest[B comparable] struct {
	Src, Tgt B
}

// Segment cuts each requested real edge in order, replacing it with two
// synthetic edges: Src→FakeExit and Entry→Tgt. It is the caller's
// responsibility (the Segmenter) to pass only edges that form a valid
// segmentation set; Segment itself only enforces the two local
// preconditions spec.md §4.1 names:
//
//  1. the (Src, Tgt) pair must name a real edge currently present in
//     EdgeList[Src] — ErrEdgeNotFound otherwise;
//  2. that edge must not already have an entry in SegmentMap —
//     ErrAlreadySegmented otherwise.
//
// Both are precondition violations: a bug in the Segmenter or the
// caller, not a property of the input procedure, so Segment aborts the
// whole batch on the first violation rather than skipping it.
func (g *AuxGraph[B]) Segment(requests []SegmentRequest[B]) error {
	if !g.hasEntry {
		return ErrNotInitialized
	}
	for _, req := range requests {
		if err := g.segmentOne(req.Src, req.Tgt); err != nil {
			return err
		}
	}
	return nil
}

func (g *AuxGraph[B]) segmentOne(src, tgt B) error {
	// A segmented edge is spliced out of EdgeList[src] below, so by the
	// time a second request for the same (src, tgt) arrives the scan
	// below would never find it; check SegmentMap's existing keys first
	// so a repeat request reports ErrAlreadySegmented rather than the
	// misleading ErrEdgeNotFound.
	for original := range g.segMap {
		if original.Src == src && original.Tgt == tgt && original.Real {
			return ErrAlreadySegmented
		}
	}

	edges := g.edgeList[src]
	idx := -1
	for i, e := range edges {
		if e.Tgt == tgt && e.Real {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrEdgeNotFound
	}
	original := edges[idx]

	// Remove original from EdgeList[src], preserving relative order of
	// the remaining successors.
	g.edgeList[src] = append(edges[:idx:idx], edges[idx+1:]...)

	toFakeExit := g.Add(src, g.fakeExit, false)
	fromEntry := g.Add(g.entry, tgt, false)
	g.segMap[original] = SegmentPair[B]{ToFakeExit: toFakeExit, FromEntry: fromEntry}

	return nil
}
