package nview

// RenderFunc renders a component.  The scope belongs to the component
// being rendered.
type RenderFunc func(scope *Scope, props Props) *Node

// Component is a named render function plus static fields.  Statics
// play the role of fields attached to a component type: metadata that
// wrappers are expected to carry along.
type Component struct {
	Name        string
	DisplayName string
	Statics     map[string]any
	Render      RenderFunc
}

// Func creates a component from a render function
func Func(name string, render RenderFunc) *Component {
	return &Component{
		Name:   name,
		Render: render,
	}
}

// Static returns a static field
func (c *Component) Static(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.Statics[key]
	return v, ok
}

// SetStatic sets a static field and returns the component
func (c *Component) SetStatic(key string, value any) *Component {
	if c.Statics == nil {
		c.Statics = make(map[string]any)
	}
	c.Statics[key] = value
	return c
}

// GetDisplayName returns the name to use in diagnostics: DisplayName if
// set, otherwise Name, otherwise "Component".
func GetDisplayName(c *Component) string {
	switch {
	case c == nil:
		return "Component"
	case c.DisplayName != "":
		return c.DisplayName
	case c.Name != "":
		return c.Name
	default:
		return "Component"
	}
}

// ReservedStatics are never copied by HoistStatics.
var ReservedStatics = map[string]struct{}{
	"displayName":              {},
	"name":                     {},
	"type":                     {},
	"propTypes":                {},
	"defaultProps":             {},
	"contextTypes":             {},
	"childContextTypes":        {},
	"getDerivedStateFromProps": {},
}

// HoistStatics copies the static fields of source onto target, skipping
// ReservedStatics.  Fields present on both are taken from source.
// target is returned.
func HoistStatics(target, source *Component) *Component {
	if target == nil || source == nil {
		return target
	}
	for k, v := range source.Statics {
		if _, reserved := ReservedStatics[k]; reserved {
			continue
		}
		target.SetStatic(k, v)
	}
	return target
}
