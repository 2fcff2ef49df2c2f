package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/junk-io/jsbind/pkg/jsbind"
	"github.com/junk-io/jsbind/pkg/jsbind/jq"
)

const helpText = `commands:
  <attr>               resolve an attribute of the bound object
  :call <attr> [args]  resolve with function semantics and invoke
  :props               enumerate own non-function properties
  :funcs               enumerate own functions
  :attrs               enumerate all own properties
  :all                 enumerate the whole prototype chain
  :match <pattern>     enumerate chain attributes matching a glob
  :query <selector>    run a jQuery selector query
  :help                show this help
  ctrl+y copy last result · esc quit`

// evaluator executes inspector commands against a bound object.
type evaluator struct {
	obj *jsbind.Object
	jq  *jq.JQuery
	rec *recorder
}

// newEvaluator binds the named object through a script recorder so each
// evaluation can report the JavaScript it generated.
func newEvaluator(exec jsbind.Executor, objectName string) (*evaluator, error) {
	rec := &recorder{exec: exec}
	// Cache function proxies only: property reads should always show the
	// page's current state.
	obj, err := jsbind.Global(rec, objectName, jsbind.CacheFuncsOnly(false))
	if err != nil {
		return nil, err
	}
	return &evaluator{
		obj: obj,
		jq:  jq.New(rec),
		rec: rec,
	}, nil
}

// eval runs one inspector command and returns the rendered result plus the
// last generated script.
func (e *evaluator) eval(ctx context.Context, input string) (result, script string, err error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "", nil
	}

	defer func() { script = e.rec.LastScript() }()

	if !strings.HasPrefix(input, ":") {
		return e.resolve(ctx, input)
	}

	cmd, rest, _ := strings.Cut(input[1:], " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help":
		return helpText, "", nil
	case "props":
		return e.names(e.obj.Properties(ctx))
	case "funcs":
		return e.names(e.obj.Functions(ctx))
	case "attrs":
		return e.names(e.obj.Attributes(ctx))
	case "all":
		return e.names(e.obj.AllAttributes(ctx))
	case "match":
		if rest == "" {
			return "", "", fmt.Errorf("usage: :match <pattern>")
		}
		return e.names(e.obj.Match(ctx, rest))
	case "call":
		name, rawArgs, _ := strings.Cut(rest, " ")
		if name == "" {
			return "", "", fmt.Errorf("usage: :call <attr> [args]")
		}
		args := splitArgs(rawArgs)
		res, err := e.obj.Call(ctx, name, args...)
		if err != nil {
			return "", "", err
		}
		return renderValue(res), "", nil
	case "query":
		if rest == "" {
			return "", "", fmt.Errorf("usage: :query <selector>")
		}
		return e.query(ctx, rest)
	default:
		return "", "", fmt.Errorf("unknown command :%s (try :help)", cmd)
	}
}

func (e *evaluator) resolve(ctx context.Context, name string) (string, string, error) {
	val, err := e.obj.Get(ctx, name)
	if err != nil {
		return "", "", err
	}
	return renderValue(val), "", nil
}

func (e *evaluator) query(ctx context.Context, selector string) (string, string, error) {
	resp := e.jq.Query(ctx, selector)
	if !resp.OK() {
		return "", "", resp.Err()
	}

	n, _ := resp.Len()
	if n == 0 {
		raw, _ := resp.Raw()
		return renderValue(raw), "", nil
	}
	return fmt.Sprintf("%d element(s) matched", n), "", nil
}

func (e *evaluator) names(names []string, err error) (string, string, error) {
	if err != nil {
		return "", "", err
	}
	if len(names) == 0 {
		return "(none)", "", nil
	}
	return strings.Join(names, "\n"), "", nil
}

// renderValue formats a resolved attribute for display. Function proxies
// show their signature; structured data renders as indented JSON, anything
// else falls back to %v.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "undefined"
	case *jsbind.Func:
		return fmt.Sprintf("function %s/%d (use :call %s)", val.Name, val.Arity, val.Name)
	case string:
		return val
	default:
		if data, err := json.MarshalIndent(val, "", "  "); err == nil {
			return string(data)
		}
		return fmt.Sprintf("%v", v)
	}
}

// splitArgs splits a whitespace-separated argument list, decoding each item
// as JSON where possible so numbers and booleans keep their types.
func splitArgs(raw string) []any {
	fields := strings.Fields(raw)
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		var v any
		if err := json.Unmarshal([]byte(f), &v); err == nil {
			args = append(args, v)
		} else {
			args = append(args, f)
		}
	}
	return args
}
