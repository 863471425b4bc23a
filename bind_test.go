package ndeps

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fooContext struct {
	foo string
}

func getFoo(ctx *fooContext, arg string) string {
	return ctx.foo + " " + arg
}

func TestBindActionsCallsWithContext(t *testing.T) {
	bound, err := BindActions(nil, Actions{"getFoo": getFoo}, &fooContext{foo: "bar"})
	require.NoError(t, err)
	f, ok := bound["getFoo"].(func(string) string)
	require.True(t, ok, "bound type %T", bound["getFoo"])
	assert.Equal(t, "bar baz", f("baz"))
}

func TestBindActionsKeepsStructure(t *testing.T) {
	actions := Actions{
		"one": Actions{
			"two": map[string]any{
				"three": map[string]interface{}{
					"getFoo": getFoo,
				},
			},
			"sibling": func(ctx *fooContext) string { return ctx.foo },
		},
		"top": getFoo,
	}
	bound, err := BindActions(nil, actions, &fooContext{foo: "bar"})
	require.NoError(t, err)

	one, ok := bound.Sub("one")
	require.True(t, ok)
	two, ok := one.Sub("two")
	require.True(t, ok)
	three, ok := two.Sub("three")
	require.True(t, ok)
	assert.Len(t, three, 1)
	assert.Equal(t, "bar foo", three["getFoo"].(func(string) string)("foo"))
	assert.Equal(t, "bar", one["sibling"].(func() string)())
	assert.Equal(t, []string{"one.sibling", "one.two.three.getFoo", "top"}, bound.Paths())

	// the input is not modified
	_, ok = actions["one"].(Actions)["two"].(map[string]any)["three"].(map[string]interface{})["getFoo"].(func(*fooContext, string) string)
	assert.True(t, ok)
}

type namedMapping map[string]any

func TestBindActionsDropsUnsupportedLeaves(t *testing.T) {
	var nilMap map[string]any
	var nilFunc func(int)
	actions := Actions{
		"keep":     getFoo,
		"number":   7,
		"string":   "str",
		"slice":    []any{getFoo},
		"nil":      nil,
		"nilMap":   nilMap,
		"nilFunc":  nilFunc,
		"struct":   fooContext{},
		"intKeyed": map[int]any{1: getFoo},
		"named":    namedMapping{"x": 1, "y": getFoo},
		"empty":    Actions{},
	}
	bound, err := BindActions(nil, actions, &fooContext{})
	require.NoError(t, err)
	assert.Len(t, bound, 3)
	assert.Contains(t, bound, "keep")
	assert.Contains(t, bound, "empty")
	assert.Equal(t, BoundActions{}, bound["empty"])
	named, ok := bound.Sub("named")
	require.True(t, ok)
	assert.Len(t, named, 1)
	assert.Contains(t, named, "y")
}

func TestBindActionsDefaults(t *testing.T) {
	bound, err := BindActions(nil, nil, "ctx")
	require.NoError(t, err)
	assert.NotNil(t, bound)
	assert.Empty(t, bound)

	accum := BoundActions{"existing": 1}
	bound, err = BindActions(accum, Actions{"f": func(string) {}}, "ctx")
	require.NoError(t, err)
	assert.Len(t, accum, 2)
	assert.Contains(t, bound, "f")
	assert.Equal(t, 1, bound["existing"])
}

func TestBindActionsSignatures(t *testing.T) {
	var calledWith []any
	actions := Actions{
		"noArgs": func() string { return "none" },
		"variadicOnly": func(args ...any) int {
			calledWith = args
			return len(args)
		},
		"variadicTail": func(ctx string, sep string, parts ...string) string {
			return ctx + ":" + strings.Join(parts, sep)
		},
		"interfaceContext": func(ctx interface{}, n int) string {
			return fmt.Sprintf("%v %d", ctx, n)
		},
		"multipleResults": func(ctx string, n int) (string, error) {
			if n < 0 {
				return "", fmt.Errorf("negative %d", n)
			}
			return strings.Repeat(ctx, n), nil
		},
	}
	bound, err := BindActions(nil, actions, "ctx")
	require.NoError(t, err)

	assert.Equal(t, "none", bound["noArgs"].(func() string)())

	assert.Equal(t, 3, bound["variadicOnly"].(func(...any) int)("a", "b"))
	assert.Equal(t, []any{"ctx", "a", "b"}, calledWith)

	assert.Equal(t, "ctx:a-b-c", bound["variadicTail"].(func(string, ...string) string)("-", "a", "b", "c"))
	assert.Equal(t, "ctx:", bound["variadicTail"].(func(string, ...string) string)("-"))

	assert.Equal(t, "ctx 4", bound["interfaceContext"].(func(int) string)(4))

	s, err := bound["multipleResults"].(func(int) (string, error))(2)
	assert.NoError(t, err)
	assert.Equal(t, "ctxctx", s)
	_, err = bound["multipleResults"].(func(int) (string, error))(-1)
	assert.Error(t, err)
}

func TestBindActionsNilContext(t *testing.T) {
	bound, err := BindActions(nil, Actions{
		"ptr": func(ctx *fooContext) bool { return ctx == nil },
		"str": func(ctx string) string { return "[" + ctx + "]" },
	}, nil)
	require.NoError(t, err)
	assert.True(t, bound["ptr"].(func() bool)())
	assert.Equal(t, "[]", bound["str"].(func() string)())
}

func TestBindActionsIncompatibleContext(t *testing.T) {
	_, err := BindActions(nil, Actions{
		"one": Actions{
			"bad": func(n int, s string) {},
		},
	}, "a string")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one.bad")
	assert.Contains(t, err.Error(), "cannot be used as the first argument")
	detailed := DetailedError(err)
	assert.Contains(t, detailed, "action: one.bad")
	assert.Contains(t, detailed, "context: ")

	assert.Panics(t, func() {
		MustBindActions(nil, Actions{"bad": func(n int) {}}, "a string")
	})
}

func TestBindActionsIsIndependent(t *testing.T) {
	actions := Actions{"getFoo": getFoo}
	a := MustBindActions(nil, actions, &fooContext{foo: "a"})
	b := MustBindActions(nil, actions, &fooContext{foo: "b"})
	assert.Equal(t, "a x", a["getFoo"].(func(string) string)("x"))
	assert.Equal(t, "b x", b["getFoo"].(func(string) string)("x"))
}

func TestValidateActions(t *testing.T) {
	assert.NoError(t, ValidateActions(nil))
	assert.NoError(t, ValidateActions(Actions{
		"f":      getFoo,
		"nested": Actions{"g": getFoo},
	}))
	err := ValidateActions(Actions{
		"f":      getFoo,
		"n":      3,
		"nested": Actions{"list": []int{1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 2 values")
	assert.Contains(t, err.Error(), "n (")
	assert.Contains(t, err.Error(), "nested.list (")
	assert.NotContains(t, err.Error(), "f (")
}
