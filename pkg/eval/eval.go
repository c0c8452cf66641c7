// Package eval handles evaluation of parsed Egg code and provides
// runtime facilities.
package eval

import (
	"io"
	"os"

	"github.com/emekler0729/egg/pkg/diag"
	"github.com/emekler0729/egg/pkg/eval/errs"
	"github.com/emekler0729/egg/pkg/eval/vals"
	"github.com/emekler0729/egg/pkg/logutil"
	"github.com/emekler0729/egg/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// Evaler provides methods for evaluating code, and maintains state that
// persists between evaluations. Each Evaler has its own builtin and
// global frames and its own special form table, so tests can construct
// isolated instances freely.
//
// Evaluation is single-threaded and synchronous throughout; the Go call
// stack models the Egg call stack directly, so deep Egg recursion maps
// to deep Go recursion.
type Evaler struct {
	// The root frame holding the primitive bindings. Parent of global.
	builtin *Env
	// The persistent global frame. Evaluations share it unless EvalCfg
	// overrides the frame to use.
	global *Env
	// Special form dispatch table, consulted for Application nodes
	// before generic evaluation. Populated once in NewEvaler and never
	// mutated afterwards.
	specials map[string]specialForm
}

// NewEvaler creates a new Evaler.
func NewEvaler() *Evaler {
	builtin := NewEnv(nil)
	for name, v := range builtinBindings {
		builtin.Define(name, v)
	}
	return &Evaler{
		builtin:  builtin,
		global:   NewEnv(builtin),
		specials: builtinSpecials,
	}
}

// Global returns the persistent global frame of the Evaler.
func (ev *Evaler) Global() *Env { return ev.global }

// EvalCfg keeps configuration for the (*Evaler).Eval method.
type EvalCfg struct {
	// Sink for the print builtin. If nil, os.Stdout is used.
	Out io.Writer
	// Frame to evaluate in. If nil, a fresh child frame of the
	// persistent global frame is created and discarded afterwards.
	Frame *Env
}

func (cfg *EvalCfg) fillDefaults(ev *Evaler) {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Frame == nil {
		cfg.Frame = NewEnv(ev.global)
	}
}

// Eval parses the given source as one top-level expression and
// evaluates it. The returned error, if not nil, is a *parse.Error, a
// *diag.Error (syntax error in a special form) or an *Exception.
func (ev *Evaler) Eval(src parse.Source, cfg EvalCfg) (any, error) {
	cfg.fillDefaults(ev)
	n, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	logger.Printf("eval %s", src.Name)
	fm := &Frame{Evaler: ev, src: src, local: cfg.Frame, out: cfg.Out}
	return fm.eval(n)
}

// Check parses the given source, reporting any syntax error without
// evaluating anything.
func (ev *Evaler) Check(src parse.Source) error {
	_, err := parse.Parse(src)
	return err
}

// Frame holds the runtime context of evaluating an expression: the
// source being evaluated, the innermost environment frame, the output
// sink and the trace of active Egg calls.
type Frame struct {
	Evaler *Evaler

	src       parse.Source
	local     *Env
	out       io.Writer
	traceback *StackTrace
}

// eval evaluates an expression node in the frame, dispatching on the
// node kind. The type switch is exhaustive over the closed node set of
// the parse package.
func (fm *Frame) eval(n parse.Node) (any, error) {
	switch n := n.(type) {
	case *parse.Literal:
		return n.Value, nil
	case *parse.Identifier:
		if v, ok := fm.local.Lookup(n.Name); ok {
			return v, nil
		}
		return nil, fm.errorp(n, errs.UndefinedVariable{Name: n.Name})
	case *parse.Application:
		return fm.evalApplication(n)
	default:
		panic("eval: unknown node type")
	}
}

// evalApplication evaluates an application node. If the operator is an
// identifier naming a special form, evaluation of the operator and the
// arguments is delegated entirely to that form; otherwise the operator
// and the arguments are evaluated generically, left to right, and the
// resulting callable is invoked.
func (fm *Frame) evalApplication(app *parse.Application) (any, error) {
	if id, ok := app.Op.(*parse.Identifier); ok {
		if sf, ok := fm.Evaler.specials[id.Name]; ok {
			return sf(fm, app)
		}
	}
	opv, err := fm.eval(app.Op)
	if err != nil {
		return nil, err
	}
	fn, ok := opv.(Callable)
	if !ok {
		return nil, fm.errorp(app.Op, errs.NotAFunction{Kind: vals.Kind(opv)})
	}
	args := make([]any, len(app.Args))
	for i, argNode := range app.Args {
		arg, err := fm.eval(argNode)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	ret, err := fn.Call(fm, args)
	if err != nil {
		return nil, fm.errorp(app, err)
	}
	return ret, nil
}

// errorp wraps a plain error into an *Exception carrying the source
// context of r and the frame's traceback. Errors that already are
// exceptions or carry their own context pass through unchanged.
func (fm *Frame) errorp(r diag.Ranger, err error) error {
	switch err.(type) {
	case *Exception, *diag.Error:
		return err
	}
	return &Exception{
		reason: err,
		stackTrace: &StackTrace{
			Head: diag.NewContext(fm.src.Name, fm.src.Code, r),
			Next: fm.traceback,
		},
	}
}

// syntaxErrorp returns a syntax error at the range of r.
func (fm *Frame) syntaxErrorp(r diag.Ranger, msg string) error {
	return NewSyntaxError(msg, diag.NewContext(fm.src.Name, fm.src.Code, r))
}
