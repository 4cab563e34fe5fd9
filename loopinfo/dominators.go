// File: dominators.go
// Role: iterative dominator-tree construction (Cooper–Harvey–Kennedy).
//
// Grounded on the Go compiler's cmd/compile/internal/ssa dominator pass:
// a postorder numbering drives repeated intersect() fixpoint passes over
// immediate dominators, visited in reverse postorder, until stable.

package loopinfo

import "github.com/RosenZhu/llvm-epp/traversal"

// domTree holds the immediate-dominator table plus the postorder numbers
// the intersect walk needs.
type domTree[B comparable] struct {
	idom   map[B]B
	postNo map[B]int
	entry  B
}

// buildDomTree computes the dominator tree of every block reachable from
// entry. preds must map each reachable block to its predecessors among
// reachable blocks (see buildPreds).
func buildDomTree[B comparable](entry B, rpo []B, preds map[B][]B) *domTree[B] {
	postNo := make(map[B]int, len(rpo))
	for i, b := range rpo {
		// rpo is entry-first; postorder number is "distance from the
		// sink", i.e. position from the end.
		postNo[b] = len(rpo) - 1 - i
	}

	idom := make(map[B]B, len(rpo))
	idom[entry] = entry

	changed := true
	for changed {
		changed = false
		for _, b := range rpo {
			if b == entry {
				continue
			}
			var newIdom B
			found := false
			for _, p := range preds[b] {
				if _, ok := idom[p]; !ok {
					continue
				}
				if !found {
					newIdom, found = p, true
					continue
				}
				newIdom = intersect(newIdom, p, postNo, idom)
			}
			if !found {
				continue // no processed predecessor yet; revisit next pass
			}
			if cur, ok := idom[b]; !ok || cur != newIdom {
				idom[b] = newIdom
				changed = true
			}
		}
	}

	return &domTree[B]{idom: idom, postNo: postNo, entry: entry}
}

// intersect finds the closest common dominator of b and c, walking up
// the (partially built) idom chains using postorder numbers: the block
// with the smaller postorder number is farther from entry.
func intersect[B comparable](b, c B, postNo map[B]int, idom map[B]B) B {
	for b != c {
		for postNo[b] < postNo[c] {
			b = idom[b]
		}
		for postNo[c] < postNo[b] {
			c = idom[c]
		}
	}
	return b
}

// dominates reports whether v dominates u (v == u counts as dominating).
func (t *domTree[B]) dominates(v, u B) bool {
	for {
		if u == v {
			return true
		}
		if u == t.entry {
			return u == v
		}
		next := t.idom[u]
		if next == u {
			return false
		}
		u = next
	}
}

// buildPreds computes, for every block reachable from entry, its
// predecessors among reachable blocks, and returns the reverse
// postorder (entry first) alongside it.
func buildPreds[B comparable](entry B, succs func(B) []B) (rpo []B, preds map[B][]B) {
	order := traversal.PostOrder(entry, succs) // sink-first
	rpo = make([]B, len(order))
	for i, b := range order {
		rpo[len(order)-1-i] = b
	}

	preds = make(map[B][]B, len(rpo))
	for _, b := range rpo {
		preds[b] = nil // ensure every reachable block has an entry
	}
	for _, b := range rpo {
		for _, s := range succs(b) {
			if _, reachable := preds[s]; reachable {
				preds[s] = append(preds[s], b)
			}
		}
	}
	return rpo, preds
}
