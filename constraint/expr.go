package constraint

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/arboria/wfc-core/wave"
)

// exprEnv is the variable environment a compiled expression sees: popcount,
// the H*V cell count, and per-pattern global admissibility counts.
type exprEnv struct {
	Popcount     int   `expr:"popcount"`
	Cells        int   `expr:"cells"`
	GlobalCounts []int `expr:"global_counts"`
}

// CompileExpr compiles a boolean feasibility expression (e.g.
// "popcount >= 20" or "global_counts[2] > 0") into a Feasibility, letting a
// caller configure the predicate as data instead of a Go closure.
func CompileExpr(source string) (Feasibility, error) {
	program, err := expr.Compile(source, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompileFailed, err)
	}
	return exprFeasibility(program), nil
}

func exprFeasibility(program *vm.Program) Feasibility {
	return func(w *wave.Wave) bool {
		env := exprEnv{
			Popcount:     w.Popcount(),
			Cells:        w.Width() * w.Height(),
			GlobalCounts: w.GlobalCounts(),
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return false
		}
		ok, isBool := out.(bool)
		if !isBool {
			return false
		}
		return ok
	}
}
