package vals

import "reflect"

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value.
	Equal(other any) bool
}

// Equal returns whether two values are equal. It is implemented for the
// builtin types bool, int and string, the List type, and types
// satisfying the Equaler interface. For other types, it uses
// reflect.DeepEqual to compare the two values.
func Equal(x, y any) bool {
	switch x := x.(type) {
	case nil:
		return x == y
	case bool:
		return x == y
	case int:
		return x == y
	case string:
		return x == y
	case List:
		if yy, ok := y.(List); ok {
			return equalList(x, yy)
		}
		return false
	case Equaler:
		return x.Equal(y)
	default:
		return reflect.DeepEqual(x, y)
	}
}

func equalList(x, y List) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Equal(x[i], y[i]) {
			return false
		}
	}
	return true
}
