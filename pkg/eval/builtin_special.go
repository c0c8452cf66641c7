package eval

// Builtin special forms. A special form intercepts application syntax:
// when the operator of an application is an identifier naming one, the
// evaluator does not evaluate the operator or the arguments generically
// but hands the raw argument expressions to the form. This is what lets
// define and set treat their first argument as a name rather than a
// value, and what lets if and while evaluate some arguments
// conditionally or repeatedly.
//
// Special forms validate the shape of their raw arguments and raise
// syntax errors for bad arity or wrong argument node kinds.

import (
	"github.com/emekler0729/egg/pkg/eval/errs"
	"github.com/emekler0729/egg/pkg/eval/vals"
	"github.com/emekler0729/egg/pkg/parse"
)

// A specialForm receives the application node with its raw, unevaluated
// argument expressions, plus the frame of the caller.
type specialForm func(*Frame, *parse.Application) (any, error)

var builtinSpecials map[string]specialForm

func init() {
	builtinSpecials = map[string]specialForm{
		"if":     ifForm,
		"while":  whileForm,
		"do":     doForm,
		"define": defineForm,
		"set":    setForm,
		"fun":    funForm,
	}
}

// IfForm = 'if' '(' Condition ',' Then ',' Else ')'
//
// Any condition value other than false counts as true.
func ifForm(fm *Frame, app *parse.Application) (any, error) {
	if len(app.Args) != 3 {
		return nil, fm.syntaxErrorp(app, "wrong number of arguments to if")
	}
	cond, err := fm.eval(app.Args[0])
	if err != nil {
		return nil, err
	}
	if vals.Bool(cond) {
		return fm.eval(app.Args[1])
	}
	return fm.eval(app.Args[2])
}

// WhileForm = 'while' '(' Condition ',' Body ')'
//
// The loop produces no useful value; it always returns false.
func whileForm(fm *Frame, app *parse.Application) (any, error) {
	if len(app.Args) != 2 {
		return nil, fm.syntaxErrorp(app, "wrong number of arguments to while")
	}
	for {
		cond, err := fm.eval(app.Args[0])
		if err != nil {
			return nil, err
		}
		if !vals.Bool(cond) {
			return false, nil
		}
		if _, err := fm.eval(app.Args[1]); err != nil {
			return nil, err
		}
	}
}

// DoForm = 'do' '(' Expr { ',' Expr } ')'
//
// Evaluates the arguments in order and returns the value of the last
// one, or false if there are none.
func doForm(fm *Frame, app *parse.Application) (any, error) {
	var value any = false
	for _, arg := range app.Args {
		var err error
		value, err = fm.eval(arg)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// DefineForm = 'define' '(' Identifier ',' Expr ')'
//
// Binds the name in the current innermost frame, shadowing any binding
// of the same name in an ancestor frame, and returns the bound value.
func defineForm(fm *Frame, app *parse.Application) (any, error) {
	id, err := nameArg(fm, app, "define")
	if err != nil {
		return nil, err
	}
	value, err := fm.eval(app.Args[1])
	if err != nil {
		return nil, err
	}
	fm.local.Define(id.Name, value)
	return value, nil
}

// SetForm = 'set' '(' Identifier ',' Expr ')'
//
// Overwrites the binding in the nearest frame that already owns the
// name and returns the set value. Unlike define, it never creates a
// binding; setting a name not bound anywhere on the chain is an error.
func setForm(fm *Frame, app *parse.Application) (any, error) {
	id, err := nameArg(fm, app, "set")
	if err != nil {
		return nil, err
	}
	value, err := fm.eval(app.Args[1])
	if err != nil {
		return nil, err
	}
	if !fm.local.Assign(id.Name, value) {
		return nil, fm.errorp(id, errs.UndefinedVariable{Name: id.Name})
	}
	return value, nil
}

// nameArg validates the shared shape of define and set: exactly two
// arguments, the first an identifier.
func nameArg(fm *Frame, app *parse.Application, form string) (*parse.Identifier, error) {
	if len(app.Args) != 2 {
		return nil, fm.syntaxErrorp(app, "wrong number of arguments to "+form)
	}
	id, ok := app.Args[0].(*parse.Identifier)
	if !ok {
		return nil, fm.syntaxErrorp(app.Args[0], "first argument to "+form+" must be an identifier")
	}
	return id, nil
}

// FunForm = 'fun' '(' { Identifier ',' } Body ')'
//
// Captures the current environment, the parameter names and the body
// into a new closure value.
func funForm(fm *Frame, app *parse.Application) (any, error) {
	if len(app.Args) == 0 {
		return nil, fm.syntaxErrorp(app, "Functions need a body")
	}
	params := make([]string, len(app.Args)-1)
	for i, arg := range app.Args[:len(app.Args)-1] {
		id, ok := arg.(*parse.Identifier)
		if !ok {
			return nil, fm.syntaxErrorp(arg, "parameter names must be identifiers")
		}
		params[i] = id.Name
	}
	return &Closure{
		ArgNames: params,
		Body:     app.Args[len(app.Args)-1],
		Captured: fm.local,
		Src:      fm.src,
		DefRange: app.Range(),
	}, nil
}
