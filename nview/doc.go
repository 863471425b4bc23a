/*
Package nview is a small component tree: components render to nodes,
nodes are expanded into elements and text, and a Scope carries values
from an ancestor component down to its descendants.

It exists so that ndeps has a host to publish into.  It is not a DOM
and it does no diffing.

	greeting := nview.Func("Greeting", func(s *nview.Scope, p nview.Props) *nview.Node {
		return nview.Element("div", nil, "hello ", p["name"])
	})
	html, err := nview.RenderHTML(nview.New(greeting, nview.Props{"name": "world"}))

Scoped values

A Key is typed.  Provide publishes a value on the scope of the
component being rendered; Lookup finds the nearest ancestor that
published.  Lookup reports absence with a false rather than returning a
default.

	var themeKey = nview.NewKey[string]("theme")

	themeKey.Provide(scope, "dark")
	theme, ok := themeKey.Lookup(scope)
*/
package nview
