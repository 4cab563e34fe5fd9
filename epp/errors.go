package epp

import "errors"

var (
	// ErrNonFakeExitLeaf is a precondition violation: the weight pass
	// reached a block with no successors whose name does not carry the
	// fake-exit marker. Only AuxGraph's synthesized FakeExit may be a
	// leaf at this point; any other leaf means init did not run, or the
	// caller mutated the graph out of band.
	ErrNonFakeExitLeaf = errors.New("epp: non-fake-exit leaf at weight assignment")

	// ErrWrongState names an encoder stage reached out of order. Encode
	// runs its stages in a fixed sequence and does not return it.
	ErrWrongState = errors.New("epp: encoder state machine out of order")

	// ErrNotEncoded is returned by Export when called on a Result whose
	// State is not Encoded.
	ErrNotEncoded = errors.New("epp: result is not in the Encoded state")
)
