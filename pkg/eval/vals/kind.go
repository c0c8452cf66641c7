package vals

import "fmt"

// Kinder wraps the Kind method.
type Kinder interface {
	Kind() string
}

// Kind returns the "kind" of the value, a concept similar to type but
// not as fine-grained. It is implemented for the builtin types bool, int
// and string, the List type, and types satisfying the Kinder interface.
// For other types, it returns the Go type name of the argument preceded
// by "!!".
func Kind(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case int:
		return "number"
	case string:
		return "string"
	case List:
		return "list"
	case Kinder:
		return v.Kind()
	default:
		return fmt.Sprintf("!!%T", v)
	}
}
