package jsbind

import "context"

// Func is a locally-callable proxy for a remote function. Each invocation
// ships one parameterized script computing `<def>(args...)` and returns the
// result; nothing is computed locally.
type Func struct {
	// Name is the attribute the function was resolved from.
	Name string

	// Arity is the remote function's declared parameter count, discovered
	// from its length property. Informational: JavaScript accepts any
	// argument count, so Call does not enforce it.
	Arity int

	call func(ctx context.Context, args ...any) (any, error)
}

// Call invokes the remote function with args.
func (f *Func) Call(ctx context.Context, args ...any) (any, error) {
	return f.call(ctx, args...)
}

// Getter is a locally-callable proxy fetching a remote property value. Each
// Get is one remote round trip; no value is retained between calls.
type Getter struct {
	// Name is the attribute the getter was resolved from.
	Name string

	get func(ctx context.Context) (any, error)
}

// Get fetches the current remote value of the property.
func (g *Getter) Get(ctx context.Context) (any, error) {
	return g.get(ctx)
}
