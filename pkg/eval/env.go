package eval

// Env is one frame of the lexical environment: a mapping from variable
// names to values, plus a link to the parent frame. The root frame has
// a nil parent. Names are unique within a frame; a child frame may bind
// a name also bound in an ancestor, shadowing it.
//
// Frames are never mutated except by Define, Assign and parameter
// binding, all of which run on the single evaluation goroutine, so no
// locking is needed even though multiple closures may share a frame.
type Env struct {
	parent   *Env
	bindings map[string]any
}

// NewEnv returns a fresh empty frame with the given parent frame.
// parent may be nil, making the new frame a root frame.
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, bindings: make(map[string]any)}
}

// Lookup walks the frame chain from e toward the root and returns the
// first bound value for name. The second return value indicates whether
// the name was bound in any frame on the chain.
func (e *Env) Lookup(name string) (any, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name to v in this exact frame, creating the binding if
// absent and overwriting it otherwise. Ancestor frames are not
// consulted; defining a name bound in an ancestor shadows it.
func (e *Env) Define(name string, v any) {
	e.bindings[name] = v
}

// Assign overwrites the binding for name in the nearest frame on the
// chain that already owns one. It reports whether such a frame was
// found; when it returns false, no frame has been modified.
func (e *Env) Assign(name string, v any) bool {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.bindings[name]; ok {
			f.bindings[name] = v
			return true
		}
	}
	return false
}

// HasOwn reports whether this exact frame owns a binding for name,
// without consulting ancestors.
func (e *Env) HasOwn(name string) bool {
	_, ok := e.bindings[name]
	return ok
}

// Names returns the names bound in this exact frame, in no particular
// order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	return names
}
