package nview

import (
	"fmt"
)

// Kind discriminates Node
type Kind uint8

const (
	KindElement Kind = iota
	KindText
	KindFragment
	KindComponent
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// ChildrenProp is the prop that holds the children passed to a component.
const ChildrenProp = "children"

// Node describes something to render.  Component nodes are expanded by
// Render; the other kinds are host nodes.
type Node struct {
	Kind      Kind
	Tag       string // KindElement
	Text      string // KindText
	Props     Props
	Children  []*Node
	Component *Component // KindComponent
}

// Props are the inputs of a component or the attributes of an element.
type Props map[string]any

// Get returns a single prop
func (p Props) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// Merge returns a new Props with the contents of p overlaid by over.
// Neither p nor over is modified.
func (p Props) Merge(over Props) Props {
	n := make(Props, len(p)+len(over))
	for k, v := range p {
		n[k] = v
	}
	for k, v := range over {
		n[k] = v
	}
	return n
}

// Children returns the children that were passed to a component.
func (p Props) Children() []*Node {
	switch c := p[ChildrenProp].(type) {
	case []*Node:
		return c
	case *Node:
		if c == nil {
			return nil
		}
		return []*Node{c}
	default:
		return nil
	}
}

// Element creates a host element.  See New for the accepted children.
func Element(tag string, props Props, children ...any) *Node {
	return &Node{
		Kind:     KindElement,
		Tag:      tag,
		Props:    props,
		Children: toNodes(children),
	}
}

// Text creates a text node
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Fragment groups nodes without adding an element
func Fragment(children ...any) *Node {
	return &Node{
		Kind:     KindFragment,
		Children: toNodes(children),
	}
}

// New creates a node that renders component c.  The props are copied.
// Children may be *Node, []*Node, string, or nil (skipped).  Anything
// else becomes text via fmt.Sprint.  Children are handed to the
// component in the "children" prop.
func New(c *Component, props Props, children ...any) *Node {
	p := Props{}.Merge(props)
	if nodes := toNodes(children); len(nodes) > 0 {
		p[ChildrenProp] = nodes
	}
	return &Node{
		Kind:      KindComponent,
		Props:     p,
		Component: c,
	}
}

func toNodes(children []any) []*Node {
	if len(children) == 0 {
		return nil
	}
	nodes := make([]*Node, 0, len(children))
	for _, child := range children {
		switch c := child.(type) {
		case nil:
		case *Node:
			if c != nil {
				nodes = append(nodes, c)
			}
		case []*Node:
			for _, n := range c {
				if n != nil {
					nodes = append(nodes, n)
				}
			}
		case string:
			nodes = append(nodes, Text(c))
		default:
			nodes = append(nodes, Text(fmt.Sprint(c)))
		}
	}
	return nodes
}
