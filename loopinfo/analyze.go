// File: analyze.go
// Role: Analyze — ties dominators, back edges, and natural-loop discovery
// together into the Info the Segmenter consumes.

package loopinfo

// Analyze computes the back-edge set and innermost-loop map for the
// procedure reachable from entry via succs.
func Analyze[B comparable](entry B, succs func(B) []B) *Info[B] {
	rpo, preds := buildPreds(entry, succs)
	tree := buildDomTree(entry, rpo, preds)

	var backEdges []Edge[B]
	loopsByHeader := make(map[B]*Loop[B])
	var headerOrder []B // preserves first-seen order for determinism

	for _, u := range rpo {
		for _, v := range succs(u) {
			if !tree.dominates(v, u) {
				continue
			}
			backEdges = append(backEdges, Edge[B]{Src: u, Tgt: v})

			loop, ok := loopsByHeader[v]
			if !ok {
				loop = &Loop[B]{Header: v, Blocks: map[B]struct{}{v: {}}}
				loopsByHeader[v] = loop
				headerOrder = append(headerOrder, v)
			}
			for b := range naturalLoopBody(u, v, preds) {
				loop.Blocks[b] = struct{}{}
			}
		}
	}

	loopOf := make(map[B]*Loop[B])
	for _, header := range headerOrder {
		loop := loopsByHeader[header]
		for b := range loop.Blocks {
			cur, has := loopOf[b]
			if !has || len(loop.Blocks) < len(cur.Blocks) {
				loopOf[b] = loop
			}
		}
	}

	return &Info[B]{BackEdges: backEdges, loopOf: loopOf}
}

// naturalLoopBody returns every block that reaches latch u by walking
// predecessors backward without passing through header v, plus v itself
// (v is always in the loop).
func naturalLoopBody[B comparable](u, v B, preds map[B][]B) map[B]struct{} {
	body := map[B]struct{}{v: {}, u: {}}
	stack := []B{u}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range preds[b] {
			if _, in := body[p]; in {
				continue
			}
			body[p] = struct{}{}
			stack = append(stack, p)
		}
	}
	return body
}
