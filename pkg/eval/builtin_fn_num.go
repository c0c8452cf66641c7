package eval

// Numerical and comparison operations.

import (
	"github.com/emekler0729/egg/pkg/eval/errs"
	"github.com/emekler0729/egg/pkg/eval/vals"
)

func init() {
	addBuiltinFns(map[string]func(fm *Frame, args []any) (any, error){
		// Arithmetic
		"+": add,
		"-": sub,
		"*": mul,
		"/": slash,

		// Comparison
		"==": eq,
		"<":  lt,
		">":  gt,
	})
}

func add(fm *Frame, args []any) (any, error) {
	a, b, err := twoNums("+", args)
	if err != nil {
		return nil, err
	}
	return a + b, nil
}

func sub(fm *Frame, args []any) (any, error) {
	a, b, err := twoNums("-", args)
	if err != nil {
		return nil, err
	}
	return a - b, nil
}

func mul(fm *Frame, args []any) (any, error) {
	a, b, err := twoNums("*", args)
	if err != nil {
		return nil, err
	}
	return a * b, nil
}

func slash(fm *Frame, args []any) (any, error) {
	a, b, err := twoNums("/", args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, errs.BadValue{What: "divisor", Valid: "non-zero number", Actual: "0"}
	}
	return a / b, nil
}

func eq(fm *Frame, args []any) (any, error) {
	if len(args) != 2 {
		return nil, errs.ArityMismatch{What: "arguments to ==",
			ValidLow: 2, ValidHigh: 2, Actual: len(args)}
	}
	return vals.Equal(args[0], args[1]), nil
}

func lt(fm *Frame, args []any) (any, error) {
	return compare("<", args, func(a, b int) bool { return a < b },
		func(a, b string) bool { return a < b })
}

func gt(fm *Frame, args []any) (any, error) {
	return compare(">", args, func(a, b int) bool { return a > b },
		func(a, b string) bool { return a > b })
}

// compare implements the ordering operators, which work on two numbers
// or two strings.
func compare(name string, args []any, numCmp func(a, b int) bool, strCmp func(a, b string) bool) (any, error) {
	if len(args) != 2 {
		return nil, errs.ArityMismatch{What: "arguments to " + name,
			ValidLow: 2, ValidHigh: 2, Actual: len(args)}
	}
	switch a := args[0].(type) {
	case int:
		if b, ok := args[1].(int); ok {
			return numCmp(a, b), nil
		}
	case string:
		if b, ok := args[1].(string); ok {
			return strCmp(a, b), nil
		}
	}
	return nil, errs.BadType{What: "arguments to " + name,
		Valid:  "two numbers or two strings",
		Actual: vals.Kind(args[0]) + " and " + vals.Kind(args[1])}
}

// twoNums checks that args are exactly two numbers.
func twoNums(name string, args []any) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errs.ArityMismatch{What: "arguments to " + name,
			ValidLow: 2, ValidHigh: 2, Actual: len(args)}
	}
	a, ok := args[0].(int)
	if !ok {
		return 0, 0, errs.BadType{What: "argument to " + name,
			Valid: "number", Actual: vals.Kind(args[0])}
	}
	b, ok := args[1].(int)
	if !ok {
		return 0, 0, errs.BadType{What: "argument to " + name,
			Valid: "number", Actual: vals.Kind(args[1])}
	}
	return a, b, nil
}
