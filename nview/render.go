package nview

import (
	"errors"
	"fmt"
)

var (
	// ErrMaxDepth is returned when components nest deeper than the
	// configured maximum, usually because a component renders itself.
	ErrMaxDepth = errors.New("nview: maximum component depth exceeded")
	// ErrRenderPanic wraps a panic raised while rendering a component.
	ErrRenderPanic = errors.New("nview: component render panicked")
	// ErrNilComponent is returned for a component node without a component
	// or without a render function.
	ErrNilComponent = errors.New("nview: nil component")
)

// DefaultMaxDepth bounds component nesting unless WithMaxDepth is used.
const DefaultMaxDepth = 1000

// RenderOption configures Render and RenderHTML
type RenderOption func(*renderConfig)

type renderConfig struct {
	scope    *Scope
	maxDepth int
}

// WithScope renders beneath an existing scope so that values provided
// there are visible to the whole tree.
func WithScope(s *Scope) RenderOption {
	return func(c *renderConfig) {
		c.scope = s
	}
}

// WithMaxDepth overrides DefaultMaxDepth
func WithMaxDepth(n int) RenderOption {
	return func(c *renderConfig) {
		c.maxDepth = n
	}
}

// Render expands all component nodes beneath node.  The returned tree
// holds only element, text, and fragment nodes.  A nil node renders as
// nil.
func Render(node *Node, opts ...RenderOption) (*Node, error) {
	cfg := renderConfig{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scope == nil {
		cfg.scope = NewScope()
	}
	return cfg.expand(node, cfg.scope, 0)
}

func (cfg *renderConfig) expand(node *Node, scope *Scope, depth int) (*Node, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Kind {
	case KindText:
		return node, nil
	case KindElement, KindFragment:
		children, err := cfg.expandChildren(node.Children, scope, depth)
		if err != nil {
			return nil, err
		}
		return &Node{
			Kind:     node.Kind,
			Tag:      node.Tag,
			Props:    node.Props,
			Children: children,
		}, nil
	case KindComponent:
		if depth >= cfg.maxDepth {
			return nil, fmt.Errorf("%w: %d rendering %s", ErrMaxDepth, cfg.maxDepth, GetDisplayName(node.Component))
		}
		if node.Component == nil || node.Component.Render == nil {
			return nil, ErrNilComponent
		}
		child := scope.Child(node.Component)
		out, err := renderComponent(node.Component, child, node.Props)
		if err != nil {
			return nil, err
		}
		return cfg.expand(out, child, depth+1)
	default:
		return nil, fmt.Errorf("nview: unknown node kind %d", node.Kind)
	}
}

func (cfg *renderConfig) expandChildren(children []*Node, scope *Scope, depth int) ([]*Node, error) {
	if len(children) == 0 {
		return nil, nil
	}
	out := make([]*Node, 0, len(children))
	for _, c := range children {
		n, err := cfg.expand(c, scope, depth)
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func renderComponent(c *Component, scope *Scope, props Props) (out *Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrRenderPanic, GetDisplayName(c), r)
		}
	}()
	if props == nil {
		props = Props{}
	}
	return c.Render(scope, props), nil
}
