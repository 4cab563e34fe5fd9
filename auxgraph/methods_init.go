// File: methods_init.go
// Role: Init — builds Nodes and EdgeList from a Procedure, then
// synthesizes FakeExit (spec.md §4.1).

package auxgraph

import "github.com/RosenZhu/llvm-epp/traversal"

// Init computes a post-order traversal of proc starting at its entry
// block, records one real edge per CFG successor (preserving proc's
// successor order), and synthesizes FakeExit with a synthetic edge from
// every leaf (a block with no CFG successors).
//
// Blocks unreachable from entry are silently excluded, per spec.md §4.1
// ("Failure conditions: none inherent").
func (g *AuxGraph[B]) Init(proc Procedure[B]) {
	entry := proc.Entry()
	order := traversal.PostOrder(entry, proc.Succs)

	for _, b := range order {
		for _, s := range proc.Succs(b) {
			g.Add(b, s, true)
		}
	}

	fakeExit := proc.NewFakeExit()
	for _, b := range order {
		if len(g.edgeList[b]) == 0 {
			g.Add(b, fakeExit, false)
		}
	}

	g.entry = entry
	g.hasEntry = true
	g.fakeExit = fakeExit
	g.name = proc.Name
	g.nodes = make([]B, 0, len(order)+1)
	g.nodes = append(g.nodes, fakeExit)
	g.nodes = append(g.nodes, order...)
}
