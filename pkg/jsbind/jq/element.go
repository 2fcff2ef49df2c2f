package jq

import (
	"context"
	"fmt"
	"time"

	"github.com/junk-io/jsbind/pkg/jsbind"
)

// Element wraps a driver element handle passed to the jQuery function, so
// its definition root is $(arguments[0]) and every generated script ships
// the handle positionally.
type Element struct {
	obj    *jsbind.Object
	exec   jsbind.Executor
	handle any
}

// NewElement wraps a driver element handle.
func NewElement(exec jsbind.Executor, handle any, opts ...jsbind.Options) *Element {
	return &Element{
		obj:    jsbind.Expr(exec, "$(arguments[0])", opts...).WithArgs(handle),
		exec:   exec,
		handle: handle,
	}
}

// Handle returns the wrapped driver element handle.
func (e *Element) Handle() any { return e.handle }

// Object returns the underlying jQuery-rooted object, for attribute
// resolution against the $() wrapper itself.
func (e *Element) Object() *jsbind.Object { return e.obj }

// AsObject rewraps the bare handle as a plain value object, addressing the
// element directly instead of through $().
func (e *Element) AsObject() *jsbind.Object {
	return jsbind.Wrap(e.exec, e.handle)
}

// Attr fetches the named attribute via $(el).attr(name).
func (e *Element) Attr(ctx context.Context, name string) (any, error) {
	res, err := e.exec.ExecuteScript(ctx,
		"return $(arguments[0]).attr(arguments[1])", e.handle, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read attribute %q: %w", name, err)
	}
	return res, nil
}

// SetAttr assigns the named attribute via $(el).attr(name, value).
func (e *Element) SetAttr(ctx context.Context, name string, value any) error {
	_, err := e.exec.ExecuteScript(ctx,
		"$(arguments[0]).attr(arguments[1], arguments[2])", e.handle, name, value)
	if err != nil {
		return fmt.Errorf("failed to set attribute %q: %w", name, err)
	}
	return nil
}

// Text returns the combined text content via $(el).text().
func (e *Element) Text(ctx context.Context) (string, error) {
	res, err := e.exec.ExecuteScript(ctx, "return $(arguments[0]).text()", e.handle)
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	s, _ := res.(string)
	return s, nil
}

// Click scrolls the element into view and clicks it. An optional settle
// duration waits after the click so handlers triggered by it can run
// before the caller proceeds; the wait is cut short if ctx is cancelled.
func (e *Element) Click(ctx context.Context, settle ...time.Duration) error {
	_, err := e.exec.ExecuteScript(ctx,
		"arguments[0].scrollIntoView(); arguments[0].click();", e.handle)
	if err != nil {
		return fmt.Errorf("failed to click element: %w", err)
	}

	var wait time.Duration
	if len(settle) > 0 {
		wait = settle[len(settle)-1]
	}
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
