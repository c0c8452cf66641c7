package eval

// Sequence operations.

import (
	"strconv"

	"github.com/emekler0729/egg/pkg/eval/errs"
	"github.com/emekler0729/egg/pkg/eval/vals"
)

func init() {
	addBuiltinFns(map[string]func(fm *Frame, args []any) (any, error){
		"array":   arrayFn,
		"length":  lengthFn,
		"element": elementFn,
	})
}

// arrayFn returns a new list containing the arguments in order.
func arrayFn(fm *Frame, args []any) (any, error) {
	return vals.List(append([]any(nil), args...)), nil
}

// lengthFn returns the number of elements of a list.
func lengthFn(fm *Frame, args []any) (any, error) {
	if len(args) != 1 {
		return nil, errs.ArityMismatch{What: "arguments to length",
			ValidLow: 1, ValidHigh: 1, Actual: len(args)}
	}
	list, ok := args[0].(vals.List)
	if !ok {
		return nil, errs.BadType{What: "argument to length",
			Valid: "list", Actual: vals.Kind(args[0])}
	}
	return len(list), nil
}

// elementFn returns the element of a list at a 0-based index. An index
// outside the list fails with an out of range error rather than
// producing a sentinel value.
func elementFn(fm *Frame, args []any) (any, error) {
	if len(args) != 2 {
		return nil, errs.ArityMismatch{What: "arguments to element",
			ValidLow: 2, ValidHigh: 2, Actual: len(args)}
	}
	list, ok := args[0].(vals.List)
	if !ok {
		return nil, errs.BadType{What: "first argument to element",
			Valid: "list", Actual: vals.Kind(args[0])}
	}
	index, ok := args[1].(int)
	if !ok {
		return nil, errs.BadType{What: "second argument to element",
			Valid: "number", Actual: vals.Kind(args[1])}
	}
	if index < 0 || index >= len(list) {
		return nil, errs.OutOfRange{What: "index",
			ValidLow: 0, ValidHigh: len(list) - 1, Actual: strconv.Itoa(index)}
	}
	return list[index], nil
}
