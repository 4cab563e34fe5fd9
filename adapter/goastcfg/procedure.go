// Package goastcfg adapts golang.org/x/tools/go/cfg's *cfg.CFG into the
// core's auxgraph.Procedure interface, so the Encoder can run directly
// over a real Go function body's control-flow graph — the same CFG
// representation uber-go/nilaway builds via the ctrlflow analysis pass
// and walks through *cfg.Block.Succs.
package goastcfg

import (
	"fmt"

	"golang.org/x/tools/go/cfg"

	"github.com/RosenZhu/llvm-epp/auxgraph"
)

// procedure wraps a *cfg.CFG as an auxgraph.Procedure[*cfg.Block]. Block
// identity is the *cfg.Block pointer itself, matching the CFG package's
// own equality semantics.
type procedure struct {
	graph     *cfg.CFG
	fakeExits map[*cfg.Block]bool
}

// New returns an auxgraph.Procedure view of graph, rooted at its entry
// block (graph.Blocks[0], per golang.org/x/tools/go/cfg's convention).
func New(graph *cfg.CFG) auxgraph.Procedure[*cfg.Block] {
	return &procedure{graph: graph, fakeExits: make(map[*cfg.Block]bool)}
}

func (p *procedure) Entry() *cfg.Block {
	return p.graph.Blocks[0]
}

func (p *procedure) Succs(b *cfg.Block) []*cfg.Block {
	return b.Succs
}

// Name returns a stable per-block label derived from the block's index
// in the CFG, used only for debug .dot output and the fake-exit marker
// check; it is never parsed back.
func (p *procedure) Name(b *cfg.Block) string {
	if p.fakeExits[b] {
		return fmt.Sprintf("%s#%d", auxgraph.FakeExitNamePrefix, b.Index)
	}
	return fmt.Sprintf("block%d", b.Index)
}

// NewFakeExit synthesizes a *cfg.Block distinct from every block in
// graph.Blocks, indexed past the end of the real block list.
func (p *procedure) NewFakeExit() *cfg.Block {
	b := &cfg.Block{Index: int32(len(p.graph.Blocks))}
	p.fakeExits[b] = true
	return b
}
