package ndeps

import (
	"reflect"
	"sort"
	"strings"

	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

// BindActions copies actions into accum, binding every function to
// context.  accum is returned; if it is nil, a new BoundActions is
// created.  A nil actions yields an empty result.
//
// Nested mappings are copied into new nested BoundActions with the
// same keys.  A function leaf is replaced by a function whose first
// parameter has been filled with context: calling the bound function
// with (a1, a2) calls the original with (context, a1, a2).  The bound
// function has the original's signature minus the first parameter and
// can be type asserted to that.  There are two special cases:
//
//	func()                a function with no parameters is kept as is
//	func(...T)            context is prepended to the variadic arguments
//
// A nil context is passed as the zero value of the first parameter.
//
// Leaves that are neither functions nor mappings (including nil,
// slices, and nil maps) are dropped.  Use ValidateActions to find
// them.
//
// The only error is a function whose first parameter cannot accept
// context.
func BindActions(accum BoundActions, actions Actions, context any) (BoundActions, error) {
	if accum == nil {
		accum = make(BoundActions, len(actions))
	}
	if actions == nil {
		return accum, nil
	}
	err := bindMapping(accum, reflect.ValueOf(actions), context, "")
	if err != nil {
		return nil, err
	}
	return accum, nil
}

// MustBindActions calls BindActions and panics if it returns an error
func MustBindActions(accum BoundActions, actions Actions, context any) BoundActions {
	bound, err := BindActions(accum, actions, context)
	if err != nil {
		panic(DetailedError(err))
	}
	return bound
}

func bindMapping(accum BoundActions, m reflect.Value, context any, prefix string) error {
	for _, key := range sortedKeys(m) {
		name := key.String()
		path := joinPath(prefix, name)
		v := indirectInterface(m.MapIndex(key))
		switch {
		case isMapping(v):
			nested := make(BoundActions, v.Len())
			if err := bindMapping(nested, v, context, path); err != nil {
				return err
			}
			accum[name] = nested
		case isFunc(v):
			bound, err := bindFunc(v, context)
			if err != nil {
				return &bindError{
					err:     errors.Wrapf(err, "cannot bind action %s", path),
					details: bindDetails(path, v.Type(), context),
				}
			}
			accum[name] = bound
		default:
			getLogger().Debug("dropping action that is neither a function nor a mapping", map[string]interface{}{
				"path": path,
				"type": valueTypeName(v),
			})
		}
	}
	return nil
}

func bindFunc(fn reflect.Value, context any) (any, error) {
	ft := fn.Type()
	if ft.NumIn() == 0 {
		return fn.Interface(), nil
	}
	first := ft.In(0)

	if ft.IsVariadic() && ft.NumIn() == 1 {
		cv, err := contextValue(context, first.Elem())
		if err != nil {
			return nil, err
		}
		return reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
			args := reflect.MakeSlice(first, 0, in[0].Len()+1)
			args = reflect.Append(args, cv)
			args = reflect.AppendSlice(args, in[0])
			return fn.CallSlice([]reflect.Value{args})
		}).Interface(), nil
	}

	cv, err := contextValue(context, first)
	if err != nil {
		return nil, err
	}
	inputs := make([]reflect.Type, ft.NumIn()-1)
	for i := range inputs {
		inputs[i] = ft.In(i + 1)
	}
	outputs := make([]reflect.Type, ft.NumOut())
	for i := range outputs {
		outputs[i] = ft.Out(i)
	}
	boundType := reflect.FuncOf(inputs, outputs, ft.IsVariadic())
	return reflect.MakeFunc(boundType, func(in []reflect.Value) []reflect.Value {
		args := make([]reflect.Value, 0, len(in)+1)
		args = append(args, cv)
		args = append(args, in...)
		if ft.IsVariadic() {
			return fn.CallSlice(args)
		}
		return fn.Call(args)
	}).Interface(), nil
}

func contextValue(context any, want reflect.Type) (reflect.Value, error) {
	if context == nil {
		return reflect.Zero(want), nil
	}
	v := reflect.ValueOf(context)
	if !v.Type().AssignableTo(want) {
		return reflect.Value{}, errors.Errorf("context, a %s, cannot be used as the first argument, a %s",
			typeName(v.Type()), typeName(want))
	}
	return v, nil
}

// ValidateActions reports the leaves of actions that BindActions would
// drop.  It returns nil when every leaf is a function or a mapping.
func ValidateActions(actions Actions) error {
	if actions == nil {
		return nil
	}
	var dropped []string
	validateMapping(reflect.ValueOf(actions), "", &dropped)
	if len(dropped) == 0 {
		return nil
	}
	return errors.Errorf("actions has %d values that are neither functions nor mappings: %s",
		len(dropped), strings.Join(dropped, ", "))
}

func validateMapping(m reflect.Value, prefix string, dropped *[]string) {
	for _, key := range sortedKeys(m) {
		path := joinPath(prefix, key.String())
		v := indirectInterface(m.MapIndex(key))
		switch {
		case isMapping(v):
			validateMapping(v, path, dropped)
		case isFunc(v):
		default:
			*dropped = append(*dropped, path+" ("+valueTypeName(v)+")")
		}
	}
}

func indirectInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isMapping(v reflect.Value) bool {
	return v.IsValid() &&
		v.Kind() == reflect.Map &&
		v.Type().Key().Kind() == reflect.String &&
		!v.IsNil()
}

func isFunc(v reflect.Value) bool {
	return v.IsValid() && v.Kind() == reflect.Func && !v.IsNil()
}

func sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

func typeName(t reflect.Type) string {
	return reflectutils.TypeName(t)
}

func valueTypeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return typeName(v.Type())
}
