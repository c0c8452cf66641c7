// Package evaltest provides a framework for testing Egg programs end to
// end.
//
// The entry point for the framework is the Test function, which accepts
// a *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by
// method calls that add expectations to it:
//
//	Test(t,
//	    That("+(1, 2)").Puts(3),
//	    That("print(55)").Prints("55\n"))
package evaltest

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/emekler0729/egg/pkg/diag"
	"github.com/emekler0729/egg/pkg/eval"
	"github.com/emekler0729/egg/pkg/eval/vals"
	"github.com/emekler0729/egg/pkg/parse"
	"github.com/google/go-cmp/cmp"
)

// Case is a test case that can be used in Test.
type Case struct {
	code  string
	setup func(ev *eval.Evaler)

	wantValue    any
	checkValue   bool
	wantPrintOut string
	checkPrint   bool
	wantErr      errorMatcher
}

// That returns a new Case with the specified source code. Multiple
// arguments are joined with newlines, mirroring how the program entry
// point concatenates input lines.
func That(lines ...string) *Case {
	return &Case{code: strings.Join(lines, "\n")}
}

// WithSetup returns the Case modified to run the given function on the
// Evaler before the code is evaluated.
func (c *Case) WithSetup(f func(ev *eval.Evaler)) *Case {
	c.setup = f
	return c
}

// Puts returns the Case modified to require the program to evaluate to
// the given final value.
func (c *Case) Puts(v any) *Case {
	c.wantValue = v
	c.checkValue = true
	return c
}

// Prints returns the Case modified to require the given output from the
// print builtin.
func (c *Case) Prints(out string) *Case {
	c.wantPrintOut = out
	c.checkPrint = true
	return c
}

// Throws returns the Case modified to require evaluation to fail. The
// argument may be an error value, matched against the exception cause
// with reflect.DeepEqual, or a matcher returned by ErrorWithType or
// ErrorWithMessage.
func (c *Case) Throws(reason any) *Case {
	if m, ok := reason.(errorMatcher); ok {
		c.wantErr = m
	} else {
		c.wantErr = exactErrorMatcher{reason.(error)}
	}
	return c
}

// DoesNothing returns the Case unchanged. It marks cases that only need
// to evaluate without failing.
func (c *Case) DoesNothing() *Case { return c }

// Test runs test cases, creating a fresh Evaler for each.
func Test(t *testing.T, cases ...*Case) {
	t.Helper()
	TestWithSetup(t, nil, cases...)
}

// TestWithSetup is like Test, but runs setup on each Evaler before
// evaluation, before any per-case setup.
func TestWithSetup(t *testing.T, setup func(ev *eval.Evaler), cases ...*Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.code, func(t *testing.T) {
			t.Helper()
			ev := eval.NewEvaler()
			if setup != nil {
				setup(ev)
			}
			if c.setup != nil {
				c.setup(ev)
			}
			var printOut bytes.Buffer
			value, err := ev.Eval(
				parse.Source{Name: "[test]", Code: c.code},
				eval.EvalCfg{Out: &printOut})

			if c.wantErr == nil {
				if err != nil {
					t.Fatalf("got error %v, want nil", err)
				}
			} else if !c.wantErr.matchError(err) {
				t.Errorf("got error %v, want %v", err, c.wantErr)
			}
			if c.checkValue && !vals.Equal(value, c.wantValue) {
				t.Errorf("final value (-want +got):\n%s",
					cmp.Diff(vals.Repr(c.wantValue), vals.Repr(value)))
			}
			if c.checkPrint {
				if diff := cmp.Diff(c.wantPrintOut, printOut.String()); diff != "" {
					t.Errorf("print output (-want +got):\n%s", diff)
				}
			}
		})
	}
}

type errorMatcher interface {
	matchError(error) bool
}

// ErrorWithType returns a matcher for errors whose exception cause has
// the same dynamic type as the argument.
func ErrorWithType(v error) errorMatcher { return errorWithType{v} }

type errorWithType struct{ v error }

func (m errorWithType) matchError(err error) bool {
	return err != nil && reflect.TypeOf(eval.Reason(err)) == reflect.TypeOf(m.v)
}

func (m errorWithType) String() string {
	return "error with type " + reflect.TypeOf(m.v).String()
}

// ErrorWithMessage returns a matcher for errors whose exception cause
// has the given message.
func ErrorWithMessage(msg string) errorMatcher { return errorWithMessage{msg} }

type errorWithMessage struct{ msg string }

func (m errorWithMessage) matchError(err error) bool {
	return err != nil && eval.Reason(err).Error() == m.msg
}

func (m errorWithMessage) String() string {
	return "error with message " + m.msg
}

// SyntaxError returns a matcher for syntax errors, raised either by the
// parser or by a special form validating its argument shape, with the
// given message.
func SyntaxError(msg string) errorMatcher { return syntaxErrorMatcher{msg} }

type syntaxErrorMatcher struct{ msg string }

func (m syntaxErrorMatcher) matchError(err error) bool {
	switch err := err.(type) {
	case *parse.Error:
		return err.Message == m.msg
	case *diag.Error:
		return err.Type == "syntax error" && err.Message == m.msg
	}
	return false
}

func (m syntaxErrorMatcher) String() string {
	return "syntax error: " + m.msg
}

type exactErrorMatcher struct{ v error }

func (m exactErrorMatcher) matchError(err error) bool {
	return err != nil && reflect.DeepEqual(eval.Reason(err), m.v)
}

func (m exactErrorMatcher) String() string { return m.v.Error() }
