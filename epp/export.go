package epp

import (
	"bytes"
	"encoding/gob"

	"github.com/klauspost/compress/s2"

	"github.com/RosenZhu/llvm-epp/auxgraph"
	"github.com/RosenZhu/llvm-epp/bigcheck"
)

// snapshot is the gob-serializable shape of a Result. Edges are recorded
// by value (Src, Tgt, Real), not by the in-memory *Edge pointer: a
// pointer's identity is meaningless once decoded into a fresh process,
// and the EdgeWeights/SegmentMap pointer sets are disjoint in practice
// (a segmented real edge is removed from EdgeList and so never appears
// in EdgeWeights), so no cross-referencing between the two is needed.
type snapshot[B any] struct {
	TotalPaths int64
	State      State
	Weights    []exportedWeight[B]
	Segments   []exportedSegment[B]
}

type exportedEdge[B any] struct {
	Src, Tgt B
	Real     bool
}

type exportedWeight[B any] struct {
	Edge   exportedEdge[B]
	Weight int64
}

type exportedSegment[B any] struct {
	Original   exportedEdge[B]
	ToFakeExit exportedEdge[B]
	FromEntry  exportedEdge[B]
}

// Export serializes an Encoded result as a compact byte stream: gob
// encoding wrapped with s2 compression, the same pairing
// inference.InferredMap uses for its own persisted artifacts.
func Export[B comparable](r *Result[B]) ([]byte, error) {
	if r.State != Encoded {
		return nil, ErrNotEncoded
	}

	snap := snapshot[B]{
		TotalPaths: r.TotalPaths.Int64(),
		State:      r.State,
		Weights:    make([]exportedWeight[B], 0, len(r.EdgeWeights)),
		Segments:   make([]exportedSegment[B], 0, len(r.SegmentMap)),
	}
	for _, we := range r.EdgeWeights {
		snap.Weights = append(snap.Weights, exportedWeight[B]{
			Edge:   toExportedEdge(we.Edge),
			Weight: we.Weight.Int64(),
		})
	}
	for original, pair := range r.SegmentMap {
		snap.Segments = append(snap.Segments, exportedSegment[B]{
			Original:   toExportedEdge(original),
			ToFakeExit: toExportedEdge(pair.ToFakeExit),
			FromEntry:  toExportedEdge(pair.FromEntry),
		})
	}

	var buf bytes.Buffer
	writer := s2.NewWriter(&buf)
	if err := gob.NewEncoder(writer).Encode(snap); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Import reconstructs a Result from bytes produced by Export. Every edge
// is reallocated: the returned Result is self-consistent (its own
// EdgeWeights and SegmentMap entries agree) but its *Edge pointers are
// not equal to any pointer from the AuxGraph that originally produced
// the result.
func Import[B comparable](data []byte) (*Result[B], error) {
	var snap snapshot[B]
	if err := gob.NewDecoder(s2.NewReader(bytes.NewReader(data))).Decode(&snap); err != nil {
		return nil, err
	}

	r := &Result[B]{
		TotalPaths: bigcheck.Int64(snap.TotalPaths),
		State:      snap.State,
		SegmentMap: make(map[*auxgraph.Edge[B]]auxgraph.SegmentPair[B], len(snap.Segments)),
	}
	for _, w := range snap.Weights {
		r.EdgeWeights = append(r.EdgeWeights, auxgraph.WeightedEdge[B]{
			Edge:   fromExportedEdge(w.Edge),
			Weight: bigcheck.Int64(w.Weight),
		})
	}
	for _, s := range snap.Segments {
		r.SegmentMap[fromExportedEdge(s.Original)] = auxgraph.SegmentPair[B]{
			ToFakeExit: fromExportedEdge(s.ToFakeExit),
			FromEntry:  fromExportedEdge(s.FromEntry),
		}
	}
	return r, nil
}

func toExportedEdge[B comparable](e *auxgraph.Edge[B]) exportedEdge[B] {
	return exportedEdge[B]{Src: e.Src, Tgt: e.Tgt, Real: e.Real}
}

func fromExportedEdge[B comparable](e exportedEdge[B]) *auxgraph.Edge[B] {
	return &auxgraph.Edge[B]{Src: e.Src, Tgt: e.Tgt, Real: e.Real}
}
