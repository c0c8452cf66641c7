package eval

// builtinBindings holds the bindings of the initial global scope. It is
// populated by the builtin_fn_*.go files during package initialization
// and read by NewEvaler; it is never mutated afterwards.
var builtinBindings = map[string]any{
	"true":  true,
	"false": false,
}

// addBuiltinFns wraps the given functions into GoFns and adds them to
// builtinBindings.
func addBuiltinFns(fns map[string]func(fm *Frame, args []any) (any, error)) {
	for name, impl := range fns {
		builtinBindings[name] = NewGoFn(name, impl)
	}
}
