package ndeps

import (
	"github.com/muir/ndeps/nview"
)

// Mapper projects the published context and actions into extra props.
// Outside of any InjectDeps wrapper both context and actions are nil.
type Mapper func(context any, actions BoundActions) nview.Props

// DefaultMapper passes the context and actions through as the
// "context" and "actions" props.
func DefaultMapper(context any, actions BoundActions) nview.Props {
	return nview.Props{
		"context": context,
		"actions": actions,
	}
}

// TypedMapper adapts a mapper that wants its context as a T.  If there
// is no context, or it is not a T, the mapper gets the zero T.
func TypedMapper[T any](mapper func(context T, actions BoundActions) nview.Props) Mapper {
	return func(context any, actions BoundActions) nview.Props {
		typed, _ := context.(T)
		return mapper(typed, actions)
	}
}

// UseDeps returns a Wrapper.  Components wrapped by it look up the
// nearest InjectDeps wrapper, call mapper with its context and bound
// actions, and render the original component with the mapped props
// laid over the props they received.  A nil mapper means DefaultMapper.
//
// Static fields of the original component are copied to the wrapper
// and the wrapper's display name is UseDeps(<original name>).
func UseDeps(mapper Mapper) Wrapper {
	if mapper == nil {
		mapper = DefaultMapper
	}
	return func(component *nview.Component) *nview.Component {
		wrapped := &nview.Component{
			Name:        "ComponentUseDeps",
			DisplayName: "UseDeps(" + nview.GetDisplayName(component) + ")",
			Render: func(scope *nview.Scope, props nview.Props) *nview.Node {
				deps, _ := FromScope(scope)
				mapped := mapper(deps.Context, deps.Actions)
				return nview.New(component, props.Merge(mapped))
			},
		}
		getLogger().Debug("wrapped component", map[string]interface{}{
			"component": wrapped.DisplayName,
		})
		return nview.HoistStatics(wrapped, component)
	}
}
