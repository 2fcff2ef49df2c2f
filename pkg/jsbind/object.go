package jsbind

import (
	"context"
	"fmt"
	"strings"
)

// Object wraps a remote JavaScript value. The wrapping form is chosen once
// at construction: named objects substitute their identifier textually into
// every generated script, value objects pass an opaque handle positionally
// as arguments[0], and expression objects use an arbitrary definition root
// with its own embedded placeholders.
//
// Object is not safe for concurrent use; the attribute cache is a plain map.
type Object struct {
	exec     Executor
	root     string
	execArgs []any
	opts     Options
	cache    map[string]any
}

// Global wraps a value resolvable by name in the remote global scope. The
// name may be dotted ("window.navigator"). A name enclosed in quotes is
// unwrapped and treated as a plain string value instead, preserving the
// distinction between "the object named x" and "the string 'x'".
func Global(exec Executor, name string, opts ...Options) (*Object, error) {
	name = strings.TrimSpace(name)
	if enclosedBy(name, `"`) || enclosedBy(name, `'`) {
		return Wrap(exec, name[1:len(name)-1], opts...), nil
	}
	if !isIdentifier(name) {
		return nil, invalidAttr(name, "not a valid identifier")
	}
	return &Object{
		exec:  exec,
		root:  name,
		opts:  objectOptions(opts),
		cache: make(map[string]any),
	}, nil
}

// Wrap wraps an opaque value, passed to every generated script as
// arguments[0]. This is the form used for driver element handles.
func Wrap(exec Executor, value any, opts ...Options) *Object {
	return &Object{
		exec:     exec,
		root:     "arguments[0]",
		execArgs: []any{value},
		opts:     objectOptions(opts),
		cache:    make(map[string]any),
	}
}

// Expr wraps an arbitrary definition expression, for roots that are neither
// a bare identifier nor a single handle, for example "$(arguments[0])".
// Positional placeholders embedded in the expression are satisfied by
// WithArgs; generated call sites splice their own arguments after them.
func Expr(exec Executor, expr string, opts ...Options) *Object {
	return &Object{
		exec:  exec,
		root:  strings.TrimSpace(expr),
		opts:  objectOptions(opts),
		cache: make(map[string]any),
	}
}

// WithArgs appends values bound to the placeholders already present in the
// definition root. It returns the object for chaining.
func (o *Object) WithArgs(args ...any) *Object {
	o.execArgs = append(o.execArgs, args...)
	return o
}

// New creates a remote object with `varName = new class(...)` in the
// executor's global scope and returns a named Object bound to varName.
func New(ctx context.Context, exec Executor, class, varName string, ctorArgs ...any) (*Object, error) {
	class = strings.TrimSpace(class)
	varName = strings.TrimSpace(varName)
	if !isIdentifier(class) {
		return nil, invalidAttr(class, "not a valid constructor name")
	}
	if !isIdentifierPart(varName) {
		return nil, invalidAttr(varName, "not a valid identifier")
	}

	script := fmt.Sprintf("%s = new %s(%s)",
		varName, class, strings.Join(placeholders(0, len(ctorArgs)), ", "))
	if _, err := exec.ExecuteScript(ctx, script, ctorArgs...); err != nil {
		return nil, fmt.Errorf("failed to construct %s: %w", class, err)
	}

	return Global(exec, varName)
}

func objectOptions(opts []Options) Options {
	if len(opts) == 0 {
		return DefaultOptions()
	}
	return opts[len(opts)-1]
}

// Executor returns the executor scripts are shipped through.
func (o *Object) Executor() Executor { return o.exec }

// Definition returns the definition root: the identifier for named objects,
// "arguments[0]" for value objects, the expression for expression objects.
func (o *Object) Definition() string { return o.root }

// Value returns the opaque handle of a value object, or nil.
func (o *Object) Value() any {
	if o.root == "arguments[0]" && len(o.execArgs) == 1 {
		return o.execArgs[0]
	}
	return nil
}

// argOffset is the index of the first free positional placeholder.
func (o *Object) argOffset() int { return countArgs(o.root) }

// path renders the access expression for name on this object's root.
func (o *Object) path(name string) string { return attrPath(o.root, name) }

// run executes `return <stmt>` with the object's bound arguments followed
// by extra.
func (o *Object) run(ctx context.Context, stmt string, extra ...any) (any, error) {
	args := make([]any, 0, len(o.execArgs)+len(extra))
	args = append(args, o.execArgs...)
	args = append(args, extra...)
	return o.exec.ExecuteScript(ctx, "return "+stmt, args...)
}

// typeOf queries the remote runtime type of the named attribute. The remote
// runtime is the only source of truth; no local inference is possible.
func (o *Object) typeOf(ctx context.Context, name string) (string, error) {
	res, err := o.run(ctx, fmt.Sprintf("typeof(%s)", o.path(name)))
	if err != nil {
		return "", err
	}
	t, _ := res.(string)
	return t, nil
}

// Get resolves the named attribute with one remote typeof round trip.
// A remote function yields a *Func proxy (one further trip for arity
// discovery); a defined non-function yields the fetched property value;
// anything else yields nil without error.
//
// A cached resolution is returned without a round trip unless a per-call
// Overwrite forces refresh.
func (o *Object) Get(ctx context.Context, name string, opts ...InvokeOptions) (any, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidAttr(name, "attribute name is empty")
	}
	opt := merge(opts)

	if cached, ok := o.cache[name]; ok && !(opt.Overwrite != nil && *opt.Overwrite) {
		if cv, ok := cached.(cachedValue); ok {
			return cv.value, nil
		}
		return cached, nil
	}

	f, err := o.wrapFunc(ctx, name)
	if err != nil {
		return nil, err
	}
	if f != nil {
		o.store(name, f, true, opt)
		return f, nil
	}

	getter, err := o.Property(ctx, name)
	if err != nil {
		return nil, err
	}
	if getter == nil {
		return nil, nil
	}
	val, err := getter.Get(ctx)
	if err != nil {
		return nil, err
	}
	o.store(name, cachedValue{value: val}, false, opt)
	return val, nil
}

// Call resolves the named attribute with function semantics and invokes it.
// A name that does not resolve to a remote function is an
// InvalidAttributeError.
func (o *Object) Call(ctx context.Context, name string, args ...any) (any, error) {
	name = strings.TrimSpace(name)
	if f, ok := o.cache[name].(*Func); ok {
		return f.Call(ctx, args...)
	}
	f, err := o.Func(ctx, name)
	if err != nil {
		return nil, err
	}
	return f.Call(ctx, args...)
}

// Func resolves the named attribute as a remote function and returns a
// locally-callable proxy. Function semantics are demanded: a name whose
// remote type is not "function" is an InvalidAttributeError.
func (o *Object) Func(ctx context.Context, name string) (*Func, error) {
	f, err := o.wrapFunc(ctx, name)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, invalidAttr(name, "not a function")
	}
	return f, nil
}

// wrapFunc returns a function proxy, or nil when the remote type of name is
// not "function".
func (o *Object) wrapFunc(ctx context.Context, name string) (*Func, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidAttr(name, "attribute name is empty")
	}

	t, err := o.typeOf(ctx, name)
	if err != nil {
		return nil, err
	}
	if t != "function" {
		return nil, nil
	}

	arity, err := o.run(ctx, o.path(name)+".length")
	if err != nil {
		return nil, err
	}

	def := o.path(name)
	offset := o.argOffset()
	return &Func{
		Name:  name,
		Arity: toInt(arity),
		call: func(ctx context.Context, args ...any) (any, error) {
			stmt := fmt.Sprintf("%s(%s)", def, strings.Join(placeholders(offset, len(args)), ", "))
			return o.run(ctx, stmt, args...)
		},
	}, nil
}

// Property resolves the named attribute as a plain property and returns a
// getter for it. A name whose remote type is "function" or "undefined"
// yields nil without error; absence is not a failure.
func (o *Object) Property(ctx context.Context, name string) (*Getter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidAttr(name, "attribute name is empty")
	}

	t, err := o.typeOf(ctx, name)
	if err != nil {
		return nil, err
	}
	if t == "function" || t == "undefined" {
		return nil, nil
	}

	def := o.path(name)
	return &Getter{
		Name: name,
		get: func(ctx context.Context) (any, error) {
			return o.run(ctx, def)
		},
	}, nil
}

// Set assigns a value to the named attribute remotely.
func (o *Object) Set(ctx context.Context, name string, value any) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidAttr(name, "attribute name is empty")
	}
	script := fmt.Sprintf("%s = arguments[%d]", o.path(name), o.argOffset())
	if _, err := o.exec.ExecuteScript(ctx, script, append(append([]any{}, o.execArgs...), value)...); err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}
	return nil
}

// store caches a resolution when the effective options allow it. An
// existing entry is only replaced when overwrite is in effect.
func (o *Object) store(name string, attr any, isFunc bool, opt InvokeOptions) {
	if !pick(opt.Cache, o.opts.CacheAttrs) {
		return
	}
	if isFunc {
		if !pick(opt.IfFunc, o.opts.CacheFuncs) {
			return
		}
	} else if !pick(opt.IfProp, o.opts.CacheProps) {
		return
	}
	if _, exists := o.cache[name]; exists && !pick(opt.Overwrite, o.opts.Overwrite) {
		return
	}
	o.cache[name] = attr
}

// Has reports whether name has a cached resolution.
func (o *Object) Has(name string) bool {
	_, ok := o.cache[strings.TrimSpace(name)]
	return ok
}

// Cached returns the cached resolution for name: a *Func for functions, the
// fetched value for properties.
func (o *Object) Cached(name string) (any, bool) {
	attr, ok := o.cache[strings.TrimSpace(name)]
	if cv, isVal := attr.(cachedValue); isVal {
		return cv.value, ok
	}
	return attr, ok
}

// ClearCache discards every cached resolution.
func (o *Object) ClearCache() {
	o.cache = make(map[string]any)
}

// cachedValue marks a cache entry holding an already-fetched property value
// rather than a proxy.
type cachedValue struct {
	value any
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	default:
		return 0
	}
}
