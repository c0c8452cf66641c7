package eval_test

import (
	"testing"

	"github.com/emekler0729/egg/pkg/eval/errs"
	. "github.com/emekler0729/egg/pkg/eval/evaltest"
)

func TestIf(t *testing.T) {
	Test(t,
		That("if(true, 1, 2)").Puts(1),
		That("if(false, 1, 2)").Puts(2),
		// Only the boolean false is false; everything else is true.
		That("if(0, 1, 2)").Puts(1),
		That(`if("", 1, 2)`).Puts(1),
		That("if(array(), 1, 2)").Puts(1),
		// The untaken branch is not evaluated.
		That("if(true, 1, bogus)").Puts(1),
		That("if(false, bogus, 2)").Puts(2),

		That("if(true, 1)").Throws(SyntaxError("wrong number of arguments to if")),
		That("if(true, 1, 2, 3)").Throws(SyntaxError("wrong number of arguments to if")),
	)
}

func TestWhile(t *testing.T) {
	Test(t,
		// The loop itself always evaluates to false.
		That("do(define(i, 0), while(<(i, 3), define(i, +(i, 1))))").Puts(false),
		That("while(false, bogus)").Puts(false),
		// The body runs once per true condition.
		That("do(define(i, 0),",
			"   while(<(i, 3), do(print(i), define(i, +(i, 1)))))").Prints("0\n1\n2\n"),

		That("while(true)").Throws(SyntaxError("wrong number of arguments to while")),
	)
}

func TestDo(t *testing.T) {
	Test(t,
		That("do()").Puts(false),
		That("do(1, 2, 3)").Puts(3),
		// Arguments are evaluated in order, for effect.
		That("do(print(1), print(2))").Prints("1\n2\n"),
	)
}

func TestDefine(t *testing.T) {
	Test(t,
		That("do(define(x, 7), x)").Puts(7),
		// define returns the bound value.
		That("define(x, 7)").Puts(7),
		// Redefining in the same frame overwrites.
		That("do(define(x, 1), define(x, 2), x)").Puts(2),

		That("define(x)").Throws(SyntaxError("wrong number of arguments to define")),
		That("define(1, 2)").Throws(SyntaxError("first argument to define must be an identifier")),
		That("define(f(x), 2)").Throws(SyntaxError("first argument to define must be an identifier")),
	)
}

func TestSet(t *testing.T) {
	Test(t,
		That("do(define(x, 1), set(x, 2), x)").Puts(2),
		// set returns the set value.
		That("do(define(x, 1), set(x, 2))").Puts(2),
		// set on a name that was never defined is an error, not a
		// definition.
		That("set(quux, true)").Throws(errs.UndefinedVariable{Name: "quux"}),

		That("set(x)").Throws(SyntaxError("wrong number of arguments to set")),
		That("set(1, 2)").Throws(SyntaxError("first argument to set must be an identifier")),
	)
}

func TestFun(t *testing.T) {
	Test(t,
		That("fun(a, +(a, 1))(10)").Puts(11),
		// Zero parameters.
		That("fun(42)()").Puts(42),
		// The wrong number of arguments is a runtime error.
		That("fun(a, a)()").Throws(errs.ArityMismatch{
			What: "arguments", ValidLow: 1, ValidHigh: 1, Actual: 0}),
		That("fun(a, a)(1, 2)").Throws(errs.ArityMismatch{
			What: "arguments", ValidLow: 1, ValidHigh: 1, Actual: 2}),

		That("fun()").Throws(SyntaxError("Functions need a body")),
		That("fun(1, 2)").Throws(SyntaxError("parameter names must be identifiers")),
	)
}
