// Package epppass is a golang.org/x/tools/go/analysis.Analyzer that runs
// the Encoder over every function declaration in a package, the
// "whole-program collaborator" realization of spec.md §6's external
// interfaces: a real Procedure supplied by golang.org/x/tools/go/cfg
// (via adapter/goastcfg), loop analysis supplied by loopinfo, and the
// core producing one epp.Result per function.
//
// This is a library-level analyzer, not a CLI: it is meant to be
// required by another *analysis.Analyzer (following the same
// composition convention golang.org/x/tools/go/analysis/passes/ctrlflow
// itself is required by uber-go/nilaway's function analyzer), not run
// standalone.
package epppass

import (
	"go/ast"
	"reflect"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/ctrlflow"
	"golang.org/x/tools/go/cfg"

	"github.com/RosenZhu/llvm-epp/adapter/goastcfg"
	"github.com/RosenZhu/llvm-epp/auxgraph"
	"github.com/RosenZhu/llvm-epp/epp"
	"github.com/RosenZhu/llvm-epp/loopinfo"
)

const doc = "runs the Ball-Larus path encoder over every function declaration in a package"

// Analyzer exposes []FuncResult (wrapped in Result[[]FuncResult]) via
// pass.ResultOf.
var Analyzer = &analysis.Analyzer{
	Name:       "epppass",
	Doc:        doc,
	Run:        wrapRun(run),
	ResultType: reflect.TypeOf((*Result[[]FuncResult])(nil)),
	Requires:   []*analysis.Analyzer{ctrlflow.Analyzer},
}

// FuncResult is one function declaration's encoded path-profiling data.
type FuncResult struct {
	FuncDecl *ast.FuncDecl
	Result   *epp.Result[*cfg.Block]
}

func run(pass *analysis.Pass) ([]FuncResult, error) {
	cfgs := pass.ResultOf[ctrlflow.Analyzer].(*ctrlflow.CFGs)

	var out []FuncResult
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Body == nil {
				continue
			}

			graph := cfgs.FuncDecl(fn)
			proc := goastcfg.New(graph)
			info := loopinfo.Analyze(proc.Entry(), proc.Succs)

			g := auxgraph.New[*cfg.Block]()
			r, err := epp.Encode(g, proc, info, epp.EncoderConfig{})
			if err != nil {
				// A precondition violation for this one function does
				// not abort the package: skip it and continue with the
				// rest, matching spec.md §7's propagation policy.
				continue
			}
			out = append(out, FuncResult{FuncDecl: fn, Result: r})
		}
	}
	return out, nil
}
