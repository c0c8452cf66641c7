package vals

import (
	"fmt"
	"strconv"
	"strings"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents the value. The string is
	// either an expression that evaluates to a value equal to the
	// receiver, or a string enclosed in "<>" describing its kind and
	// identity, like <fn>.
	Repr() string
}

// Repr returns the representation of a value, a string that is
// preferably (but not necessarily) an Egg expression that evaluates to
// the argument. It is implemented for the builtin types bool, int and
// string, the List type, and types satisfying the Reprer interface. For
// other types, it uses fmt.Sprint with the format "<unknown %v>".
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(v)
	case string:
		return `"` + v + `"`
	case List:
		elems := make([]string, len(v))
		for i, e := range v {
			elems[i] = Repr(e)
		}
		return "array(" + strings.Join(elems, ", ") + ")"
	case Reprer:
		return v.Repr()
	default:
		return fmt.Sprintf("<unknown %v>", v)
	}
}

// ToString converts a value to the string used by the print builtin.
// It differs from Repr in that strings are written verbatim, without
// surrounding quotes.
func ToString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return Repr(v)
}
