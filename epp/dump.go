package epp

import (
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/RosenZhu/llvm-epp/auxgraph"
)

// dumpStage writes g's current .dot form to cfg.DotSink under name, if
// cfg.DumpGraphs is enabled. Errors from the dump are surfaced to the
// caller: a requested dump that silently failed would be worse than no
// dump at all.
func dumpStage[B comparable](g *auxgraph.AuxGraph[B], cfg EncoderConfig, name string) (err error) {
	if !cfg.DumpGraphs {
		return nil
	}
	w := cfg.DotSink(name)
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	var dst io.Writer = w
	if cfg.CompressDumps {
		sw := s2.NewWriter(w)
		defer func() {
			if cerr := sw.Close(); err == nil {
				err = cerr
			}
		}()
		dst = sw
	}
	return g.DotW(dst)
}
