package jq

import (
	"context"
	"fmt"
	"strings"

	"github.com/junk-io/jsbind/pkg/jsbind"
)

// ElementIdentifier classifies raw executor results. Drivers implement it
// on their executor so Query can tell element handles apart from plain
// values.
type ElementIdentifier interface {
	IsElement(v any) bool
}

// JQuery wraps the jQuery `$` function in the remote global scope. It
// implements jsbind.Executor itself, classifying results into elements and
// capturing remote failures into deferred responses, so it can stand in
// wherever the driver would while keeping Query's error contract.
type JQuery struct {
	obj   *jsbind.Object
	exec  jsbind.Executor
	ident ElementIdentifier
}

// New binds the remote `$` function. If the executor also implements
// ElementIdentifier, query results are classified into elements; otherwise
// every result is treated as a plain value.
func New(exec jsbind.Executor, opts ...jsbind.Options) *JQuery {
	// "$" is a valid identifier, so the named constructor cannot fail.
	obj, _ := jsbind.Global(exec, "$", opts...)
	jq := &JQuery{obj: obj, exec: exec}
	if ident, ok := exec.(ElementIdentifier); ok {
		jq.ident = ident
	}
	return jq
}

// Object returns the wrapped `$` function as a plain object, for attribute
// access on jQuery itself ($.fn, $.ajax, version fields and so on).
func (jq *JQuery) Object() *jsbind.Object { return jq.obj }

// ExecuteScript runs a script through the wrapped executor and classifies
// the result: a single element handle comes back as an *Element, a
// non-empty slice of element handles as a *Response, anything else as the
// raw value. A remote failure is captured into a deferred-failure
// *Response rather than returned, so callers inherit the same
// never-raises contract Query provides.
func (jq *JQuery) ExecuteScript(ctx context.Context, script string, args ...any) (any, error) {
	res, err := jq.exec.ExecuteScript(ctx, script, args...)
	if err != nil {
		return fail(nil, err), nil
	}
	if jq.isElement(res) {
		return NewElement(jq.exec, res), nil
	}
	if items, ok := res.([]any); ok && len(items) > 0 && jq.isElement(items[0]) {
		return jq.wrapSlice(items), nil
	}
	return res, nil
}

// Query dispatches on the target type:
//
//   - a selector string ships one $(selector) round trip;
//   - an element handle wraps locally without a round trip;
//   - a slice wraps each handle, failing the response if any member is not
//     an element.
//
// Remote failures are captured into the response, never returned.
func (jq *JQuery) Query(ctx context.Context, target any) *Response {
	switch q := target.(type) {
	case string:
		return jq.querySelector(ctx, q)
	case []any:
		return jq.wrapSlice(q)
	default:
		if jq.isElement(q) {
			return succeed(q, []*Element{NewElement(jq.exec, q)})
		}
		return fail(target, fmt.Errorf("%w: %T", ErrNotElement, target))
	}
}

// querySelector runs $(selector) remotely and classifies the result.
func (jq *JQuery) querySelector(ctx context.Context, selector string) *Response {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return fail(selector, fmt.Errorf("%w: empty selector", ErrNotElement))
	}

	res, err := jq.exec.ExecuteScript(ctx, "return $(arguments[0])", selector)
	if err != nil {
		return fail(nil, err)
	}
	return jq.classify(res)
}

// classify shapes a raw executor result into a response.
func (jq *JQuery) classify(res any) *Response {
	if jq.isElement(res) {
		return succeed(res, []*Element{NewElement(jq.exec, res)})
	}
	if items, ok := res.([]any); ok {
		return jq.wrapSlice(items)
	}
	// A plain value: successful, but with nothing to wrap.
	return succeed(res, nil)
}

func (jq *JQuery) wrapSlice(items []any) *Response {
	elems := make([]*Element, 0, len(items))
	for _, item := range items {
		if !jq.isElement(item) {
			return fail(items, fmt.Errorf("%w: %T in result", ErrNotElement, item))
		}
		elems = append(elems, NewElement(jq.exec, item))
	}
	return succeed(items, elems)
}

func (jq *JQuery) isElement(v any) bool {
	return jq.ident != nil && jq.ident.IsElement(v)
}
