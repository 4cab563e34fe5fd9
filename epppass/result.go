package epppass

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/tools/go/analysis"
)

// Result pairs a sub-analyzer's actual return value with an optional
// error, the convention golang.org/x/tools/go/analysis sub-analyzers use
// so a failure in one analyzer does not abort the whole analysis run.
type Result[T any] struct {
	Res T
	Err error
}

// wrapRun adapts f to an *analysis.Pass -> (any, error) analysis.Run
// function: the result is always wrapped in *Result[T], and a panic
// inside f is recovered and converted to an error rather than crashing
// the whole analysis.
func wrapRun[T any](f func(*analysis.Pass) (T, error)) func(*analysis.Pass) (any, error) {
	return func(pass *analysis.Pass) (result any, _ error) {
		r := &Result[T]{}
		result = r
		name := ""
		if pass != nil && pass.Analyzer != nil {
			name = pass.Analyzer.Name
		}
		defer func() {
			if p := recover(); p != nil {
				r.Err = fmt.Errorf("panic in %q: %v\n%s", name, p, debug.Stack())
			}
		}()

		res, err := f(pass)
		if err != nil {
			err = fmt.Errorf("%s: %w", name, err)
		}
		r.Res, r.Err = res, err
		return result, nil
	}
}
