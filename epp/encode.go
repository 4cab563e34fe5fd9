package epp

import (
	"github.com/RosenZhu/llvm-epp/auxgraph"
	"github.com/RosenZhu/llvm-epp/bigcheck"
	"github.com/RosenZhu/llvm-epp/loopinfo"
	"github.com/RosenZhu/llvm-epp/segment"
)

// Encode drives the full pipeline for one procedure: AuxGraph.Init, the
// Segmenter, and Ball–Larus weight assignment with overflow detection
// (spec.md §4.3's data flow). It returns a fresh Result; the AuxGraph
// passed in is mutated in place and left in its final (Segmented) shape,
// so a caller that also wants a post-encode .dot dump can still use it.
//
// loopInfo is typically the result of loopinfo.Analyze over the same
// procedure, but any *loopinfo.Info for proc's CFG is accepted — callers
// with their own loop analysis (e.g. from an existing SSA form) may build
// one by hand.
func Encode[B comparable](g *auxgraph.AuxGraph[B], proc auxgraph.Procedure[B], loopInfo *loopinfo.Info[B], cfg EncoderConfig) (*Result[B], error) {
	g.Init(proc)
	if err := dumpStage(g, cfg, "auxgraph-1.dot"); err != nil {
		return nil, err
	}

	cuts := segment.Select(g, loopInfo)
	if err := g.Segment(cuts); err != nil {
		return nil, err
	}
	if err := dumpStage(g, cfg, "auxgraph-2.dot"); err != nil {
		return nil, err
	}

	total, ok, err := assignWeights(g)
	if err != nil {
		return nil, err
	}
	if err := dumpStage(g, cfg, "auxgraph-3.dot"); err != nil {
		return nil, err
	}

	if !ok {
		return &Result[B]{
			TotalPaths: bigcheck.Zero,
			SegmentMap: g.GetSegmentMap(),
			State:      Overflowed,
		}, nil
	}

	return &Result[B]{
		TotalPaths:  total,
		EdgeWeights: g.GetWeights(),
		SegmentMap:  g.GetSegmentMap(),
		State:       Encoded,
	}, nil
}
