package eval

// Callable wraps the Call method. Callable values are first class: they
// can be stored in variables and lists, and passed as arguments.
type Callable interface {
	// Call calls the callable with the given evaluated argument values.
	Call(fm *Frame, args []any) (any, error)
}

// GoFn is a callable implemented in Go. All builtin functions of the
// initial global scope are GoFns.
type GoFn struct {
	name string
	impl func(fm *Frame, args []any) (any, error)
}

// NewGoFn wraps a Go function into a GoFn.
func NewGoFn(name string, impl func(fm *Frame, args []any) (any, error)) *GoFn {
	return &GoFn{name, impl}
}

// Kind returns "fn".
func (*GoFn) Kind() string { return "fn" }

// Equal compares by identity.
func (f *GoFn) Equal(rhs any) bool { return f == rhs }

// Repr returns an opaque representation naming the builtin.
func (f *GoFn) Repr() string { return "<builtin " + f.name + ">" }

// Call calls the underlying Go function.
func (f *GoFn) Call(fm *Frame, args []any) (any, error) {
	return f.impl(fm, args)
}
