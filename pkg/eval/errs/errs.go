// Package errs declares error types used as exception causes.
package errs

import (
	"fmt"
	"strconv"
)

// UndefinedVariable is thrown when evaluating an identifier that is not
// bound in any frame of the environment chain, or when set targets such
// a name.
type UndefinedVariable struct {
	Name string
}

// Error implements the error interface.
func (e UndefinedVariable) Error() string {
	return "undefined variable: " + e.Name
}

// NotAFunction is thrown when the operator of an application evaluates
// to a value that cannot be called. Kind describes the kind of the
// offending value.
type NotAFunction struct {
	Kind string
}

// Error implements the error interface.
func (e NotAFunction) Error() string {
	return "applying a non-function: " + e.Kind
}

// ArityMismatch is thrown by a callable when the number of arguments
// the user supplies does not match what is required.
type ArityMismatch struct {
	What     string
	ValidLow int
	// High end of the valid range, or -1 for unbounded.
	ValidHigh int
	Actual    int
}

// Error implements the error interface.
func (e ArityMismatch) Error() string {
	return "arity mismatch: " + e.What +
		" must be " + valid(e.ValidLow, e.ValidHigh) +
		", but is " + nValues(e.Actual)
}

// BadType is thrown when a builtin function receives an argument of the
// wrong kind.
type BadType struct {
	What   string
	Valid  string
	Actual string
}

// Error implements the error interface.
func (e BadType) Error() string {
	return "bad type: " + e.What + " must be " + e.Valid + ", but is " + e.Actual
}

// BadValue is thrown when a builtin function receives an argument of
// the right kind but a bad value.
type BadValue struct {
	What   string
	Valid  string
	Actual string
}

// Error implements the error interface.
func (e BadValue) Error() string {
	return "bad value: " + e.What + " must be " + e.Valid + ", but is " + e.Actual
}

// OutOfRange is thrown when a value is out of its valid range.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    string
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return "out of range: " + e.What + " has no valid value, but is " + e.Actual
	}
	return "out of range: " + e.What +
		" must be from " + strconv.Itoa(e.ValidLow) + " to " + strconv.Itoa(e.ValidHigh) +
		", but is " + e.Actual
}

func valid(low, high int) string {
	switch {
	case high == -1:
		return fmt.Sprintf("%d or more values", low)
	case low == high:
		return nValues(low)
	default:
		return fmt.Sprintf("%d to %d values", low, high)
	}
}

func nValues(n int) string {
	if n == 1 {
		return "1 value"
	}
	return fmt.Sprintf("%d values", n)
}
