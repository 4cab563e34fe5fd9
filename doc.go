// Package llvmepp is the root of an Efficient Path Profiling (EPP)
// implementation: Ball-Larus path numbering with Ball's edge-segmentation
// technique, applied to an arbitrary procedure representation.
//
// The core lives in three subpackages, in dependency order:
//
//	auxgraph/ — owns the acyclic, single-sink auxiliary graph: nodes,
//	            edges, segmentation table, and weight table.
//	segment/  — decides which edges of the original CFG must be cut to
//	            make the auxiliary graph acyclic.
//	epp/      — the Encoder: drives init, segmentation, and Ball-Larus
//	            weight assignment with overflow detection, producing a
//	            total path count, edge-weight table, and segmentation
//	            map for one procedure.
//
// Supporting packages:
//
//	bigcheck/         — signed 64-bit arithmetic with explicit overflow
//	                    detection, used for path counts and weights.
//	traversal/        — the cycle-tolerant post-order walk AuxGraph.Init
//	                    and the Segmenter both rely on.
//	loopinfo/         — dominator-tree and natural-loop analysis, a
//	                    reference implementation of the external loop
//	                    collaborator the Segmenter consumes.
//	decode/           — the canonical path decoder: reconstructs a block
//	                    sequence from a path number.
//	adapter/goastcfg/ — adapts golang.org/x/tools/go/cfg into the core's
//	                    Procedure interface, for running over real Go
//	                    function bodies.
//	epppass/          — a golang.org/x/tools/go/analysis.Analyzer that
//	                    runs the Encoder over every function declaration
//	                    in a package.
//
// The core never inspects block contents; it is parameterized over any
// caller-supplied block identity satisfying Go's comparable constraint,
// and observes only a successor relation and the names needed to mark
// the synthetic fake-exit block.
//
// Producing instrumentation bytecode, a runtime counter representation,
// a command-line front end, and inter-procedural analysis are explicitly
// out of scope.
package llvmepp
