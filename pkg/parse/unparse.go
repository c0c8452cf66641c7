package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Unparse returns the canonical textual form of an expression tree.
// Parsing the result produces a tree structurally equal to n. String
// literals are written back verbatim; the grammar has no escape
// sequences, so a string containing a double quote has no textual form.
func Unparse(n Node) string {
	var sb strings.Builder
	unparse(&sb, n)
	return sb.String()
}

func unparse(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Literal:
		switch v := n.Value.(type) {
		case string:
			sb.WriteByte('"')
			sb.WriteString(v)
			sb.WriteByte('"')
		case int:
			sb.WriteString(strconv.Itoa(v))
		default:
			panic(fmt.Sprintf("unparse: invalid literal value %T", v))
		}
	case *Identifier:
		sb.WriteString(n.Name)
	case *Application:
		unparse(sb, n.Op)
		sb.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			unparse(sb, arg)
		}
		sb.WriteByte(')')
	}
}
