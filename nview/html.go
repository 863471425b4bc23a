package nview

import (
	"fmt"
	"html"
	"reflect"
	"sort"
	"strings"
)

// RenderHTML renders node and serializes the result.  Fragments add no
// markup.  Element props become attributes in key order; the children
// prop, nil values, false, and functions are left out, and true
// becomes a bare attribute.
func RenderHTML(node *Node, opts ...RenderOption) (string, error) {
	out, err := Render(node, opts...)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	writeHTML(&b, out)
	return b.String(), nil
}

func writeHTML(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindText:
		b.WriteString(html.EscapeString(n.Text))
	case KindFragment:
		for _, c := range n.Children {
			writeHTML(b, c)
		}
	case KindElement:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		writeAttributes(b, n.Props)
		b.WriteByte('>')
		for _, c := range n.Children {
			writeHTML(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}

func writeAttributes(b *strings.Builder, props Props) {
	keys := make([]string, 0, len(props))
	for k := range props {
		if k == ChildrenProp {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := props[k]
		switch tv := v.(type) {
		case nil:
			continue
		case bool:
			if tv {
				b.WriteByte(' ')
				b.WriteString(k)
			}
			continue
		}
		if reflect.TypeOf(v).Kind() == reflect.Func {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(fmt.Sprint(v)))
		b.WriteByte('"')
	}
}
