package ndeps

import (
	"reflect"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Actions is an actions mapping as given to InjectDeps.  Values are
// either functions whose first argument receives the context, or
// nested mappings.  Any map with string keys counts as a nested
// mapping.
type Actions map[string]any

// BoundActions is the result of binding Actions to a context.  Every
// function leaf has had its first argument filled.  Nested mappings are
// BoundActions too.
type BoundActions map[string]any

// PathSeparator joins keys in the dotted paths accepted by Get, Func,
// and Call.
const PathSeparator = "."

// Get returns the value at a dotted path such as "one.two.getFoo".
func (b BoundActions) Get(path string) (any, bool) {
	var current any = b
	for _, key := range strings.Split(path, PathSeparator) {
		m, ok := current.(BoundActions)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Func is Get restricted to functions
func (b BoundActions) Func(path string) (any, bool) {
	v, ok := b.Get(path)
	if !ok || v == nil || reflect.TypeOf(v).Kind() != reflect.Func {
		return nil, false
	}
	return v, true
}

// Sub returns a nested mapping
func (b BoundActions) Sub(key string) (BoundActions, bool) {
	sub, ok := b[key].(BoundActions)
	return sub, ok
}

// Paths lists the dotted path of every function, sorted.
func (b BoundActions) Paths() []string {
	var paths []string
	b.walk("", func(path string, _ any) {
		paths = append(paths, path)
	})
	sort.Strings(paths)
	return paths
}

func (b BoundActions) walk(prefix string, f func(path string, fn any)) {
	for key, v := range b {
		path := joinPath(prefix, key)
		if sub, ok := v.(BoundActions); ok {
			sub.walk(path, f)
			continue
		}
		f(path, v)
	}
}

// Call invokes the function at path.  A nil argument is passed as the
// zero value of its parameter.  The results are returned in order.
func (b BoundActions) Call(path string, args ...any) ([]any, error) {
	fn, ok := b.Func(path)
	if !ok {
		return nil, errors.Errorf("no action at %s", path)
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, errors.Errorf("action %s takes at least %d arguments, got %d", path, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, errors.Errorf("action %s takes %d arguments, got %d", path, fixed, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if i < fixed {
			want = t.In(i)
		} else {
			want = t.In(t.NumIn() - 1).Elem()
		}
		if arg == nil {
			in[i] = reflect.Zero(want)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(want) {
			return nil, errors.Errorf("argument %d of action %s is a %s, which cannot be used as a %s",
				i+1, path, typeName(av.Type()), typeName(want))
		}
		in[i] = av
	}
	out := v.Call(in)
	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, nil
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + PathSeparator + key
}
