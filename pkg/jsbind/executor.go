package jsbind

import "context"

// Executor is the sole boundary to the browser driver: execute a JavaScript
// function body with positional arguments, returning its value or an error
// on remote failure.
//
// The script is a function body in the selenium style: positional arguments
// are addressed as arguments[0], arguments[1], … and a value is produced
// with an explicit return statement. How the body is framed for the
// underlying driver is the implementation's concern.
type Executor interface {
	ExecuteScript(ctx context.Context, script string, args ...any) (any, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, script string, args ...any) (any, error)

// ExecuteScript calls f.
func (f ExecutorFunc) ExecuteScript(ctx context.Context, script string, args ...any) (any, error) {
	return f(ctx, script, args...)
}
