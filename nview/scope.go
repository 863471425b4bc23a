package nview

// Scope is the per-component node of the channel that carries values
// from ancestors to descendants.  Values are stored on the scope of the
// component that provided them and found by walking parents.
//
// Scopes are created by Render and are only valid during a render pass.
type Scope struct {
	parent    *Scope
	component *Component
	values    map[any]any
}

// NewScope creates a root scope.  Values provided on it are visible to
// everything rendered with WithScope.
func NewScope() *Scope {
	return &Scope{}
}

// Child creates a scope nested in s for rendering component c.
func (s *Scope) Child(c *Component) *Scope {
	return &Scope{
		parent:    s,
		component: c,
	}
}

// Parent returns the enclosing scope, nil for a root
func (s *Scope) Parent() *Scope {
	if s == nil {
		return nil
	}
	return s.parent
}

// Component returns the component this scope was created for, nil for a root
func (s *Scope) Component() *Component {
	if s == nil {
		return nil
	}
	return s.component
}

// Depth is the number of ancestors
func (s *Scope) Depth() int {
	d := 0
	for p := s.Parent(); p != nil; p = p.parent {
		d++
	}
	return d
}

func (s *Scope) set(key, value any) {
	if s.values == nil {
		s.values = make(map[any]any)
	}
	s.values[key] = value
}

func (s *Scope) get(key any) (any, bool) {
	for c := s; c != nil; c = c.parent {
		if v, ok := c.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Key identifies a value carried by scopes.  Keys compare by identity:
// two keys with the same name are different keys.
type Key[T any] struct {
	id *keyID
}

type keyID struct {
	name string
}

// NewKey creates a key.  The name is only used for diagnostics.
func NewKey[T any](name string) Key[T] {
	return Key[T]{id: &keyID{name: name}}
}

func (k Key[T]) String() string {
	if k.id == nil {
		return "<nil key>"
	}
	return k.id.name
}

// Provide publishes value on scope s.  Descendants of the component
// that owns s will find it with Lookup.  Providing twice on the same
// scope replaces the earlier value.
func (k Key[T]) Provide(s *Scope, value T) {
	if s == nil || k.id == nil {
		return
	}
	s.set(k.id, value)
}

// Lookup finds the value from the nearest scope, starting at s, that
// provided k.  The bool is false when nothing did.
func (k Key[T]) Lookup(s *Scope) (T, bool) {
	var zero T
	if k.id == nil {
		return zero, false
	}
	v, ok := s.get(k.id)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
