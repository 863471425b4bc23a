// Obligatory // comment

/*

Package ndeps passes a context and a set of actions down a component
tree.  An ancestor component is wrapped with InjectDeps to publish them;
descendants are wrapped with UseDeps to receive them as props.

Actions

Actions are functions whose first argument is the context.  InjectDeps
binds them to the context once so that descendants call them without
it:

	type Store struct{ Prefix string }

	actions := ndeps.Actions{
		"greet": func(s *Store, name string) string {
			return s.Prefix + " " + name
		},
		"users": ndeps.Actions{
			"count": func(s *Store) int { return 3 },
		},
	}

After binding, "greet" is a func(string) string and "users.count" is a
func() int.  The nesting of the mapping is kept.  Values that are
neither functions nor mappings are dropped; ValidateActions lists them.

Injecting

	withDeps := ndeps.MustInjectDeps(&Store{Prefix: "hello"}, actions)
	App := withDeps(Layout)

Everything rendered beneath App can find the store and the bound
actions.  If InjectDeps wrappers are nested, the nearest one is used.

Using

	Greeting := ndeps.UseDeps(func(_ any, actions ndeps.BoundActions) nview.Props {
		greet, _ := actions.Func("greet")
		return nview.Props{"greet": greet}
	})(GreetingView)

The mapper's props are laid over the props the component was given.
Without a mapper, the context and actions arrive as the "context" and
"actions" props.  Outside of any InjectDeps wrapper, the mapper is
called with nil for both.

Both wrappers copy the static fields of the component they wrap and
rename it InjectDeps(Name) or UseDeps(Name).

The component tree itself is package nview.

*/
package ndeps
