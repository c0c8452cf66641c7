package eval

import (
	"github.com/emekler0729/egg/pkg/diag"
	"github.com/emekler0729/egg/pkg/eval/errs"
	"github.com/emekler0729/egg/pkg/parse"
)

// Closure is a function defined with Egg code by the fun special form.
// It bundles an ordered list of parameter names, a body expression and
// the environment frame chain that was active at its definition,
// giving it lexical rather than dynamic scoping.
type Closure struct {
	ArgNames []string
	Body     parse.Node
	Captured *Env
	Src      parse.Source
	DefRange diag.Ranging
}

var _ Callable = &Closure{}

// Kind returns "fn".
func (*Closure) Kind() string { return "fn" }

// Equal compares by identity.
func (c *Closure) Equal(rhs any) bool { return c == rhs }

// Repr returns an opaque representation.
func (c *Closure) Repr() string { return "<fn>" }

// Call calls a closure. It creates one new child frame of the captured
// defining environment, binds each parameter to the corresponding
// argument in that frame, and evaluates the body there. The frame is
// owned by this call and is discarded when it returns, unless captured
// by a nested closure created during the call.
func (c *Closure) Call(fm *Frame, args []any) (any, error) {
	if len(args) != len(c.ArgNames) {
		return nil, errs.ArityMismatch{What: "arguments",
			ValidLow: len(c.ArgNames), ValidHigh: len(c.ArgNames), Actual: len(args)}
	}
	local := NewEnv(c.Captured)
	for i, name := range c.ArgNames {
		local.Define(name, args[i])
	}
	body := &Frame{
		Evaler: fm.Evaler, src: c.Src, local: local, out: fm.out,
		traceback: &StackTrace{
			Head: diag.NewContext(c.Src.Name, c.Src.Code, c.DefRange),
			Next: fm.traceback,
		},
	}
	return body.eval(c.Body)
}
