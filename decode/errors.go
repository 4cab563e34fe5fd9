package decode

import "errors"

var (
	// ErrOutOfRange is returned when the requested path number is not in
	// [0, TotalPaths) for the graph being decoded.
	ErrOutOfRange = errors.New("decode: path number out of range")

	// ErrNoMatchingEdge is a precondition violation: a non-sink block had
	// no successor edge with weight <= the remaining path number. This
	// can only happen if the graph's weights were not produced by a
	// valid Ball–Larus assignment over this exact graph.
	ErrNoMatchingEdge = errors.New("decode: no successor edge matches remaining path number")
)
