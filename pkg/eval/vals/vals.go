// Package vals contains basic facilities for manipulating values used
// in the Egg runtime.
//
// The concrete types a value can take are the Go types bool, int and
// string, the List type defined here, and any type implementing the
// callable interface of the eval package. Operations on values are
// implemented as functions in this package dispatching on the concrete
// type, falling back to interfaces like Kinder or Reprer that
// non-basic types may implement.
package vals

// List is the sequence value produced by the array builtin: ordered,
// 0-indexed and heterogeneous.
type List []any
