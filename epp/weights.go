package epp

import (
	"github.com/RosenZhu/llvm-epp/auxgraph"
	"github.com/RosenZhu/llvm-epp/bigcheck"
)

// assignWeights performs Ball–Larus greedy weight assignment over g,
// which must already be segmented (acyclic, single sink). It walks
// g.Nodes() in its stored order (FakeExit first, Entry last — a valid
// reverse topological order once segmentation has run) and returns the
// total path count, or ok == false if an addition overflowed partway
// through.
//
// On overflow the caller is responsible for the sentinel behavior
// spec.md §4.3 describes (clearing NumPaths, recording NumPaths[Entry]
// = 0); assignWeights itself only reports that it happened, not where.
func assignWeights[B comparable](g *auxgraph.AuxGraph[B]) (total bigcheck.Int64, ok bool, err error) {
	numPaths := make(map[B]bigcheck.Int64, len(g.Nodes()))

	for _, b := range g.Nodes() {
		succs := g.Succs(b)
		if len(succs) == 0 {
			if !g.IsFakeExit(b) {
				return bigcheck.Zero, false, ErrNonFakeExitLeaf
			}
			numPaths[b] = bigcheck.One
			continue
		}

		pathCount := bigcheck.Zero
		for _, e := range succs {
			g.SetWeight(e, pathCount)

			sum, overflow := pathCount.Add(numPaths[e.Tgt])
			if overflow {
				return bigcheck.Zero, false, nil
			}
			pathCount = sum
		}
		numPaths[b] = pathCount
	}

	return numPaths[g.Entry()], true, nil
}
