package ndeps

import (
	"github.com/muir/ndeps/nview"
)

// Deps is what an InjectDeps wrapper publishes to its descendants.
type Deps struct {
	Context any
	Actions BoundActions
}

// DepsKey is the scope key that InjectDeps wrappers provide and
// UseDeps wrappers look up.
var DepsKey = nview.NewKey[Deps]("ndeps")

// Wrapper turns a component into a wrapped component
type Wrapper func(*nview.Component) *nview.Component

// InjectDeps binds actions to context (see BindActions) and returns a
// Wrapper.  Components wrapped by it render the original component
// with the same props and make the context and the bound actions
// available to every descendant.  The nearest enclosing wrapper wins.
//
// Binding happens once, here.  All components wrapped by the returned
// Wrapper share the same BoundActions, which must not be modified.
//
// Static fields of the original component are copied to the wrapper
// and the wrapper's display name is InjectDeps(<original name>).
func InjectDeps(context any, actions Actions) (Wrapper, error) {
	bound, err := BindActions(nil, actions, context)
	if err != nil {
		return nil, err
	}
	deps := Deps{
		Context: context,
		Actions: bound,
	}
	return func(component *nview.Component) *nview.Component {
		wrapped := &nview.Component{
			Name:        "ComponentWithDeps",
			DisplayName: "InjectDeps(" + nview.GetDisplayName(component) + ")",
			Render: func(scope *nview.Scope, props nview.Props) *nview.Node {
				DepsKey.Provide(scope, deps)
				return nview.New(component, props)
			},
		}
		getLogger().Debug("wrapped component", map[string]interface{}{
			"component": wrapped.DisplayName,
			"actions":   len(deps.Actions),
		})
		return nview.HoistStatics(wrapped, component)
	}, nil
}

// MustInjectDeps calls InjectDeps and panics if it returns an error
func MustInjectDeps(context any, actions Actions) Wrapper {
	w, err := InjectDeps(context, actions)
	if err != nil {
		panic(DetailedError(err))
	}
	return w
}

// FromScope returns what the nearest InjectDeps wrapper above scope
// published.  The bool is false if there is no such wrapper.
func FromScope(scope *nview.Scope) (Deps, bool) {
	return DepsKey.Lookup(scope)
}
