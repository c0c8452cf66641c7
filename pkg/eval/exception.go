package eval

import (
	"fmt"
	"strings"

	"github.com/emekler0729/egg/pkg/diag"
)

// Exception represents a runtime failure: an underlying reason plus the
// source contexts of the expressions that were being evaluated when the
// failure happened. It is returned by (*Evaler).Eval and is never
// recovered internally; propagation stops only at the top-level caller.
type Exception struct {
	reason     error
	stackTrace *StackTrace
}

// StackTrace is a linked list of source contexts, innermost first.
type StackTrace struct {
	Head *diag.Context
	Next *StackTrace
}

// Reason returns the underlying cause of the exception.
func (exc *Exception) Reason() error { return exc.reason }

// StackTrace returns the stack trace of the exception.
func (exc *Exception) StackTrace() *StackTrace { return exc.stackTrace }

// Error returns the message of the cause of the exception.
func (exc *Exception) Error() string { return exc.reason.Error() }

// Show shows the exception, including the stack trace.
func (exc *Exception) Show(indent string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "exception: \033[31;1m%s\033[m", exc.reason.Error())
	for tb := exc.stackTrace; tb != nil; tb = tb.Next {
		sb.WriteString("\n" + indent + "  ")
		sb.WriteString(tb.Head.Show(indent + "  "))
	}
	return sb.String()
}

// Reason returns the Reason field if err is an *Exception. Otherwise it
// returns err itself.
func Reason(err error) error {
	if exc, ok := err.(*Exception); ok {
		return exc.reason
	}
	return err
}

// NewSyntaxError creates a *diag.Error of the syntax error type. Syntax
// errors are raised by special forms validating the shape of their raw
// arguments; they carry a source context but no stack trace.
func NewSyntaxError(msg string, ctx *diag.Context) *diag.Error {
	return &diag.Error{Type: "syntax error", Message: msg, Context: *ctx}
}
