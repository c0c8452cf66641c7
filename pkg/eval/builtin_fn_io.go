package eval

// Input/output operations.

import (
	"fmt"

	"github.com/emekler0729/egg/pkg/eval/errs"
	"github.com/emekler0729/egg/pkg/eval/vals"
)

func init() {
	addBuiltinFns(map[string]func(fm *Frame, args []any) (any, error){
		"print": printFn,
	})
}

// printFn writes the textual form of its argument to the frame's output
// sink, followed by a newline, and returns the value unchanged.
func printFn(fm *Frame, args []any) (any, error) {
	if len(args) != 1 {
		return nil, errs.ArityMismatch{What: "arguments to print",
			ValidLow: 1, ValidHigh: 1, Actual: len(args)}
	}
	fmt.Fprintln(fm.out, vals.ToString(args[0]))
	return args[0], nil
}
