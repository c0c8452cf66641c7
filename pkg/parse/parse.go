// Package parse implements the Egg parser.
//
// Egg has a single syntactic category, the expression. An expression
// starts with a double-quoted string literal, an unsigned decimal
// integer or a symbol, and may be followed by any number of
// parenthesized argument lists; each list turns the expression before
// it into an application, so chained calls like f(x)(y) parse
// naturally.
//
// The parser produces a tree of exactly three node kinds: Literal,
// Identifier and Application. Every node records the range of source
// text it was parsed from.
package parse

import (
	"strconv"
	"unicode"

	"github.com/emekler0729/egg/pkg/diag"
)

// Source describes a piece of source code.
type Source struct {
	Name string
	Code string
}

// SourceForTest returns a Source for testing.
func SourceForTest(code string) Source {
	return Source{Name: "[test]", Code: code}
}

// Node is implemented by all expression nodes. The set of
// implementations is closed: a node is a *Literal, an *Identifier or an
// *Application, and the evaluator dispatches with an exhaustive type
// switch over these three.
type Node interface {
	diag.Ranger
	node()
}

// Literal is a string or number literal. Value is either a string or an
// int, and is immutable once constructed.
type Literal struct {
	diag.Ranging
	Value any
}

// Identifier holds a symbol name. It carries no value itself; it is
// resolved against an environment at evaluation time.
type Identifier struct {
	diag.Ranging
	Name string
}

// Application applies an operator expression to zero or more argument
// expressions. The operator is typically an *Identifier, but may be any
// expression that evaluates to a callable.
type Application struct {
	diag.Ranging
	Op   Node
	Args []Node
}

func (*Literal) node()     {}
func (*Identifier) node()  {}
func (*Application) node() {}

// Parse parses the given source as one top-level expression. The
// returned error, if not nil, has type *Error.
func Parse(src Source) (Node, error) {
	ps := &parser{srcName: src.Name, src: src.Code}
	n, err := ps.expr()
	if err != nil {
		return nil, err
	}
	ps.skipInert()
	if ps.pos != len(ps.src) {
		return nil, ps.error("Unexpected text after program")
	}
	return n, nil
}

// expr parses one expression, including any apply suffixes.
func (ps *parser) expr() (Node, error) {
	ps.skipInert()
	begin := ps.pos
	var n Node
	switch r := ps.peek(); {
	case r == '"':
		ps.next()
		for ps.peek() != '"' {
			if ps.peek() == eof {
				return nil, ps.errorp(diag.Ranging{From: begin, To: ps.pos}, "Unexpected syntax")
			}
			ps.next()
		}
		text := ps.src[begin+1 : ps.pos]
		ps.next()
		n = &Literal{diag.Ranging{From: begin, To: ps.pos}, text}
	case isDigit(r):
		for isDigit(ps.peek()) {
			ps.next()
		}
		if isWord(ps.peek()) {
			// No word boundary after the digits; the whole run is a
			// symbol, like 1st.
			ps.pos = begin
			n = ps.symbol()
		} else {
			num, err := strconv.Atoi(ps.src[begin:ps.pos])
			if err != nil {
				return nil, ps.errorp(diag.Ranging{From: begin, To: ps.pos}, "number out of range")
			}
			n = &Literal{diag.Ranging{From: begin, To: ps.pos}, num}
		}
	case isSymbol(r):
		n = ps.symbol()
	default:
		return nil, ps.error("Unexpected syntax")
	}
	return ps.applySuffix(n)
}

// symbol parses a maximal run of symbol runes as an Identifier.
func (ps *parser) symbol() *Identifier {
	begin := ps.pos
	for isSymbol(ps.peek()) {
		ps.next()
	}
	return &Identifier{diag.Ranging{From: begin, To: ps.pos}, ps.src[begin:ps.pos]}
}

// applySuffix parses the parenthesized argument lists that may follow
// an expression, each turning the expression parsed so far into an
// Application.
func (ps *parser) applySuffix(op Node) (Node, error) {
	ps.skipInert()
	if ps.peek() != '(' {
		return op, nil
	}
	ps.next()
	app := &Application{Op: op}
	ps.skipInert()
	if ps.peek() == ')' {
		ps.next()
	} else {
		for {
			arg, err := ps.expr()
			if err != nil {
				return nil, err
			}
			app.Args = append(app.Args, arg)
			ps.skipInert()
			switch ps.peek() {
			case ')':
				ps.next()
			case ',':
				ps.next()
				continue
			default:
				return nil, ps.error("Expected ',' or ')'")
			}
			break
		}
	}
	app.Ranging = diag.MixedRanging(op, diag.PointRanging(ps.pos))
	return ps.applySuffix(app)
}

// skipInert skips a maximal run of whitespace and #-to-end-of-line
// comments.
func (ps *parser) skipInert() {
	for {
		switch r := ps.peek(); {
		case r == '#':
			for ps.peek() != '\n' && ps.peek() != eof {
				ps.next()
			}
		case r != eof && unicode.IsSpace(r):
			ps.next()
		default:
			return
		}
	}
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// isWord reports whether r would extend a word, in the sense of the
// word boundary required after a number literal.
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isSymbol reports whether r may appear in a symbol: anything except
// whitespace, parentheses, comma, double quote and the comment sign.
func isSymbol(r rune) bool {
	switch r {
	case eof, '(', ')', ',', '"', '#':
		return false
	}
	return !unicode.IsSpace(r)
}
