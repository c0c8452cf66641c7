package vals

// Bool converts a value to bool, using the truthiness rule of the
// language: exactly the boolean false is false, and every other value
// (including 0, "" and the empty list) is true.
func Bool(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}
