package jq

import (
	"context"
	"errors"
)

// ErrNoElements is returned by element accessors on a successful response
// that matched nothing.
var ErrNoElements = errors.New("query matched no elements")

// ErrNotElement reports a query result that was expected to be an element
// handle or a slice of element handles but was not.
var ErrNotElement = errors.New("expected an element or a slice of elements")

// Response wraps the result of a query that may have failed. A failed query
// is captured, not surfaced: OK and Err never fail, and every other
// accessor returns the original captured error value, so diagnostics remain
// traceable to the real remote cause via errors.Is.
type Response struct {
	raw   any
	elems []*Element
	err   error
}

// fail builds a response carrying a captured error.
func fail(raw any, err error) *Response {
	return &Response{raw: raw, err: err}
}

// succeed builds a response from classified elements.
func succeed(raw any, elems []*Element) *Response {
	return &Response{raw: raw, elems: elems}
}

// OK reports whether the query succeeded. It never surfaces the captured
// error.
func (r *Response) OK() bool { return r.err == nil }

// Err returns the captured error, or nil. Like OK it is safe on any
// response.
func (r *Response) Err() error { return r.err }

// Raw returns the value the response was built from.
func (r *Response) Raw() (any, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.raw, nil
}

// Len returns the number of matched elements.
func (r *Response) Len() (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return len(r.elems), nil
}

// Element returns the first matched element.
func (r *Response) Element() (*Element, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.elems) == 0 {
		return nil, ErrNoElements
	}
	return r.elems[0], nil
}

// Elements returns every matched element.
func (r *Response) Elements() ([]*Element, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.elems, nil
}

// Attr fetches the named attribute of the first matched element.
func (r *Response) Attr(ctx context.Context, name string) (any, error) {
	el, err := r.Element()
	if err != nil {
		return nil, err
	}
	return el.Attr(ctx, name)
}
