package goastcfg_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/cfg"

	"github.com/RosenZhu/llvm-epp/adapter/goastcfg"
	"github.com/RosenZhu/llvm-epp/auxgraph"
	"github.com/RosenZhu/llvm-epp/epp"
	"github.com/RosenZhu/llvm-epp/loopinfo"
)

const src = `package p

func F(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			total += i
		} else {
			total -= i
		}
	}
	return total
}
`

func parseFunc(t *testing.T) *cfg.CFG {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, 0)
	require.NoError(t, err)

	var fn *ast.FuncDecl
	for _, decl := range file.Decls {
		if d, ok := decl.(*ast.FuncDecl); ok {
			fn = d
			break
		}
	}
	require.NotNil(t, fn)

	return cfg.New(fn.Body, func(*ast.CallExpr) bool { return true })
}

func TestProcedure_EncodesRealGoFunction(t *testing.T) {
	graph := parseFunc(t)
	proc := goastcfg.New(graph)

	succs := func(b *cfg.Block) []*cfg.Block { return proc.Succs(b) }
	info := loopinfo.Analyze(proc.Entry(), succs)

	g := auxgraph.New[*cfg.Block]()
	r, err := epp.Encode(g, proc, info, epp.EncoderConfig{})
	require.NoError(t, err)
	require.Equal(t, epp.Encoded, r.State)
	require.Greater(t, r.TotalPaths.Int64(), int64(0))
}
