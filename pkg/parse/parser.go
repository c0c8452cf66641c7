package parse

import (
	"fmt"
	"unicode/utf8"

	"github.com/emekler0729/egg/pkg/diag"
)

// parser maintains the mutable state of parsing.
//
// NOTE: The src member is assumed to be valid UTF-8.
type parser struct {
	srcName string
	src     string
	pos     int
}

const eof rune = -1

func (ps *parser) peek() rune {
	if ps.pos == len(ps.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(ps.src[ps.pos:])
	return r
}

func (ps *parser) next() rune {
	if ps.pos == len(ps.src) {
		return eof
	}
	r, s := utf8.DecodeRuneInString(ps.src[ps.pos:])
	ps.pos += s
	return r
}

// Error is a parse error.
type Error struct {
	Message string
	Context diag.Context
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("syntax error: %d-%d in %s: %s",
		e.Context.From, e.Context.To, e.Context.Name, e.Message)
}

// Range returns the range of the error.
func (e *Error) Range() diag.Ranging {
	return e.Context.Range()
}

// Show shows the error with its source context.
func (e *Error) Show(indent string) string {
	header := fmt.Sprintf("syntax error: \033[31;1m%s\033[m\n", e.Message)
	return header + indent + "  " + e.Context.Show(indent+"  ")
}

// errorp returns an Error spanning the given range.
func (ps *parser) errorp(r diag.Ranger, msg string) *Error {
	return &Error{Message: msg, Context: *diag.NewContext(ps.srcName, ps.src, r)}
}

// error returns an Error at the current position.
func (ps *parser) error(msg string) *Error {
	end := ps.pos
	if end < len(ps.src) {
		end++
	}
	return ps.errorp(diag.Ranging{From: ps.pos, To: end}, msg)
}
