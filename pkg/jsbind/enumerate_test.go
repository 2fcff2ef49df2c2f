package jsbind

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// enumStub answers own-property and prototype-chain enumeration scripts,
// then falls back to remoteStub for resolution trips.
func enumStub(root string, own, chain []string, funcs map[string]int, props map[string]any) func(string, ...any) (any, error) {
	resolve := remoteStub(root, funcs, props)
	return func(script string, args ...any) (any, error) {
		isChain := strings.Contains(script, "getPrototypeOf")
		names := own
		if isChain {
			names = chain
		}

		if strings.Contains(script, "getOwnPropertyNames") {
			filtered := make([]any, 0, len(names))
			for _, name := range names {
				_, isFunc := funcs[name]
				switch {
				case strings.Contains(script, `=== "function"`) && !isFunc:
				case strings.Contains(script, `!== "function"`) && isFunc:
				default:
					filtered = append(filtered, name)
				}
			}
			return filtered, nil
		}

		return resolve(script, args...)
	}
}

func TestObject_Attributes(t *testing.T) {
	exec := &scriptedExec{handler: enumStub("app",
		[]string{"run", "name"}, nil,
		map[string]int{"run": 0},
		map[string]any{"name": "demo"})}

	obj, err := Global(exec, "app")
	require.NoError(t, err)

	attrs, err := obj.Attributes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "name"}, attrs)

	require.Len(t, exec.calls, 1)
	assert.Equal(t, "return Object.getOwnPropertyNames(app)", exec.calls[0].script)
}

func TestObject_FunctionsAndProperties(t *testing.T) {
	exec := &scriptedExec{handler: enumStub("app",
		[]string{"run", "stop", "name"}, nil,
		map[string]int{"run": 0, "stop": 0},
		map[string]any{"name": "demo"})}

	obj, err := Global(exec, "app")
	require.NoError(t, err)
	ctx := context.Background()

	funcs, err := obj.Functions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "stop"}, funcs)
	assert.Contains(t, exec.calls[0].script, `typeof(app[p]) === "function"`)

	props, err := obj.Properties(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, props)
}

func TestObject_AllAttributes_WalksPrototypeChain(t *testing.T) {
	exec := &scriptedExec{handler: enumStub("app",
		[]string{"run"}, []string{"run", "toString", "hasOwnProperty"},
		map[string]int{"run": 0, "toString": 0, "hasOwnProperty": 1}, nil)}

	obj, err := Global(exec, "app")
	require.NoError(t, err)

	attrs, err := obj.AllAttributes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "toString", "hasOwnProperty"}, attrs)

	require.Len(t, exec.calls, 1)
	assert.Contains(t, exec.calls[0].script, "Object.getPrototypeOf(current)")
	assert.Contains(t, exec.calls[0].script, "Object.getOwnPropertyNames(current)")
}

func TestObject_Match(t *testing.T) {
	exec := &scriptedExec{handler: enumStub("window",
		nil, []string{"onclick", "onload", "name", "onerror"},
		nil, nil)}

	obj, err := Global(exec, "window")
	require.NoError(t, err)

	matched, err := obj.Match(context.Background(), "on*")
	require.NoError(t, err)
	assert.Equal(t, []string{"onclick", "onload", "onerror"}, matched)
}

func TestObject_Match_InvalidPattern(t *testing.T) {
	exec := &scriptedExec{}
	obj, err := Global(exec, "window")
	require.NoError(t, err)

	_, err = obj.Match(context.Background(), "[")
	assert.Error(t, err)
	assert.Empty(t, exec.calls, "pattern errors must not round trip")
}

func TestObject_Populate(t *testing.T) {
	exec := &scriptedExec{handler: enumStub("app",
		[]string{"run", "name"}, nil,
		map[string]int{"run": 0},
		map[string]any{"name": "demo"})}

	obj, err := Global(exec, "app")
	require.NoError(t, err)

	vals, err := obj.Populate(context.Background())
	require.NoError(t, err)
	require.Len(t, vals, 2)

	_, isFunc := vals["run"].(*Func)
	assert.True(t, isFunc, "function attributes populate as proxies")
	assert.Equal(t, "demo", vals["name"])

	// Populate caches everything it resolves.
	assert.True(t, obj.Has("run"))
	assert.True(t, obj.Has("name"))
}

func TestObject_Populate_FuncsOnly(t *testing.T) {
	exec := &scriptedExec{handler: enumStub("app",
		[]string{"run", "name"}, nil,
		map[string]int{"run": 0},
		map[string]any{"name": "demo"})}

	obj, err := Global(exec, "app")
	require.NoError(t, err)

	vals, err := obj.Populate(context.Background(), InvokeOptions{IfProp: Bool(false)})
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Contains(t, vals, "run")
}

func TestObject_WrapAll(t *testing.T) {
	exec := &scriptedExec{handler: enumStub("app",
		[]string{"run", "name"}, nil,
		map[string]int{"run": 0},
		map[string]any{"name": "demo"})}

	obj, err := Global(exec, "app")
	require.NoError(t, err)

	wrapped, err := obj.WrapAll(context.Background())
	require.NoError(t, err)
	require.Len(t, wrapped, 2)

	_, isFunc := wrapped["run"].(*Func)
	assert.True(t, isFunc)

	getter, isGetter := wrapped["name"].(*Getter)
	require.True(t, isGetter, "properties wrap as getters, not fetched values")

	val, err := getter.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "demo", val)
}

func TestObject_WrapAllChain(t *testing.T) {
	exec := &scriptedExec{handler: enumStub("app",
		[]string{"run"}, []string{"run", "toString", "name"},
		map[string]int{"run": 0, "toString": 0},
		map[string]any{"name": "demo"})}

	obj, err := Global(exec, "app")
	require.NoError(t, err)

	wrapped, err := obj.WrapAllChain(context.Background())
	require.NoError(t, err)
	require.Len(t, wrapped, 3, "chain wrapping must reach inherited attributes")

	_, isFunc := wrapped["toString"].(*Func)
	assert.True(t, isFunc)

	_, isGetter := wrapped["name"].(*Getter)
	assert.True(t, isGetter)
}

func TestObject_WrapAllChain_FuncsOnly(t *testing.T) {
	exec := &scriptedExec{handler: enumStub("app",
		[]string{"run"}, []string{"run", "name"},
		map[string]int{"run": 0},
		map[string]any{"name": "demo"})}

	obj, err := Global(exec, "app")
	require.NoError(t, err)

	wrapped, err := obj.WrapAllChain(context.Background(), InvokeOptions{IfProp: Bool(false)})
	require.NoError(t, err)
	require.Len(t, wrapped, 1)
	assert.Contains(t, wrapped, "run")
}

func TestToStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, toStrings([]any{"a", "b"}))
	assert.Equal(t, []string{"a"}, toStrings([]any{"a", 1}))
	assert.Equal(t, []string{"a"}, toStrings([]string{"a"}))
	assert.Nil(t, toStrings("a"))
	assert.Nil(t, toStrings(nil))
}

func TestChainFilterSuffix(t *testing.T) {
	assert.Empty(t, chainFilterSuffix("x", filterNone))
	assert.Equal(t, `.filter(p => typeof(x[p]) === "function")`, chainFilterSuffix("x", filterFuncs))
	assert.Equal(t, `.filter(p => typeof(x[p]) !== "function")`, chainFilterSuffix("x", filterProps))
}

func TestEnumerate_ValueFormPassesHandle(t *testing.T) {
	exec := &scriptedExec{handler: func(script string, args ...any) (any, error) {
		if strings.Contains(script, "getOwnPropertyNames") {
			return []any{"tagName"}, nil
		}
		return nil, fmt.Errorf("unexpected script: %s", script)
	}}

	obj := Wrap(exec, "handle")
	_, err := obj.Attributes(context.Background())
	require.NoError(t, err)

	require.Len(t, exec.calls, 1)
	assert.Equal(t, []any{"handle"}, exec.calls[0].args)
	assert.Equal(t, "return Object.getOwnPropertyNames(arguments[0])", exec.calls[0].script)
}
