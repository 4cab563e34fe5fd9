package auxgraph

import "errors"

// Sentinel errors for AuxGraph operations. Callers should branch on these
// with errors.Is, never by comparing error strings.
var (
	// ErrEdgeNotFound indicates Segment referenced a (src,tgt) pair that is
	// not a real edge currently present in EdgeList[src].
	ErrEdgeNotFound = errors.New("auxgraph: edge not found")

	// ErrAlreadySegmented indicates Segment was asked to cut an edge that
	// already has an entry in SegmentMap. Each real edge may be segmented
	// at most once (invariant 4 of the data model).
	ErrAlreadySegmented = errors.New("auxgraph: edge already segmented")

	// ErrNotInitialized indicates an operation was attempted on an AuxGraph
	// before Init (or after Clear) populated it.
	ErrNotInitialized = errors.New("auxgraph: graph not initialized")

	// ErrDanglingSuccessor names a block with no recorded successors that
	// is not FakeExit. No AuxGraph method returns it; epp's weight pass
	// reports that case as epp.ErrNonFakeExitLeaf.
	ErrDanglingSuccessor = errors.New("auxgraph: non-sink block has no successors")
)
