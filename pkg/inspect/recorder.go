package inspect

import (
	"context"

	"github.com/junk-io/jsbind/pkg/jsbind"
)

// recorder wraps an executor and remembers the last script shipped through
// it, so the inspector can echo the generated JavaScript alongside results.
type recorder struct {
	exec jsbind.Executor
	last string
}

func (r *recorder) ExecuteScript(ctx context.Context, script string, args ...any) (any, error) {
	r.last = script
	return r.exec.ExecuteScript(ctx, script, args...)
}

// IsElement delegates to the wrapped executor's classifier, if any.
func (r *recorder) IsElement(v any) bool {
	if ident, ok := r.exec.(interface{ IsElement(any) bool }); ok {
		return ident.IsElement(v)
	}
	return false
}

// LastScript returns the most recently shipped script, or "".
func (r *recorder) LastScript() string { return r.last }
