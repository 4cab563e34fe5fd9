// Package decode implements the canonical path decoder spec.md §8
// describes: given a segmented, weighted AuxGraph and a path number k,
// reconstruct the unique acyclic Entry->FakeExit path whose weight sum
// is exactly k.
//
// This is the offline collaborator spec.md §2 calls out as external to
// the core ("the decoding tool that maps a path number back to a block
// sequence"); it is implemented here so the round-trip property is
// testable end to end against the Encoder's own output.
package decode

import "github.com/RosenZhu/llvm-epp/auxgraph"

// Decode reconstructs the block sequence for path number k, given the
// total path count the Encoder computed for g. At each block it picks
// the successor edge with the greatest weight not exceeding the
// remaining path number, subtracts that weight, and proceeds to the
// edge's target, stopping once FakeExit is reached.
func Decode[B comparable](g *auxgraph.AuxGraph[B], total int64, k int64) ([]B, error) {
	if k < 0 || k >= total {
		return nil, ErrOutOfRange
	}

	cur := g.Entry()
	remaining := k
	path := []B{cur}

	for !g.IsFakeExit(cur) {
		edges := g.Succs(cur)
		chosen := -1
		for i, e := range edges {
			w, ok := g.GetEdgeWeight(e)
			if !ok {
				w = 0
			}
			if w > remaining {
				continue
			}
			if chosen == -1 {
				chosen = i
				continue
			}
			bestWeight, _ := g.GetEdgeWeight(edges[chosen])
			if w > bestWeight {
				chosen = i
			}
		}
		if chosen == -1 {
			return nil, ErrNoMatchingEdge
		}

		w, _ := g.GetEdgeWeight(edges[chosen])
		remaining -= w
		cur = edges[chosen].Tgt
		path = append(path, cur)
	}

	return path, nil
}
