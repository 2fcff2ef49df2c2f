package jsbind

import (
	"context"
	"fmt"

	"github.com/gobwas/glob"
)

// typeFilter selects which attribute kinds an enumeration reports.
type typeFilter int

const (
	filterNone typeFilter = iota
	filterFuncs
	filterProps
)

// Attributes returns the names of the object's own properties, functions
// included.
func (o *Object) Attributes(ctx context.Context) ([]string, error) {
	return o.enumerate(ctx, false, filterNone)
}

// Functions returns the names of the object's own properties whose remote
// type is "function".
func (o *Object) Functions(ctx context.Context) ([]string, error) {
	return o.enumerate(ctx, false, filterFuncs)
}

// Properties returns the names of the object's own non-function properties.
func (o *Object) Properties(ctx context.Context) ([]string, error) {
	return o.enumerate(ctx, false, filterProps)
}

// AllAttributes returns every own-property name of the object and its
// prototype chain.
func (o *Object) AllAttributes(ctx context.Context) ([]string, error) {
	return o.enumerate(ctx, true, filterNone)
}

// AllFunctions returns every function name of the object and its prototype
// chain.
func (o *Object) AllFunctions(ctx context.Context) ([]string, error) {
	return o.enumerate(ctx, true, filterFuncs)
}

// AllProperties returns every non-function property name of the object and
// its prototype chain.
func (o *Object) AllProperties(ctx context.Context) ([]string, error) {
	return o.enumerate(ctx, true, filterProps)
}

// Match returns the attribute names of the object and its prototype chain
// matching a glob pattern, e.g. "on*" for event handler slots.
func (o *Object) Match(ctx context.Context, pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid attribute pattern %q: %w", pattern, err)
	}

	names, err := o.AllAttributes(ctx)
	if err != nil {
		return nil, err
	}

	matched := names[:0]
	for _, name := range names {
		if g.Match(name) {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

func (o *Object) enumerate(ctx context.Context, chain bool, filter typeFilter) ([]string, error) {
	def := o.root
	var stmt string

	if chain {
		// Own-property enumeration walking the prototype chain.
		stmt = fmt.Sprintf(`(() => {
	let props = new Set();
	let current = %s;

	do {
		Object.getOwnPropertyNames(current).map(p => props.add(p));
	} while ((current = Object.getPrototypeOf(current)));

	return [...props.keys()]%s;
})()`, def, chainFilterSuffix(def, filter))
	} else {
		stmt = fmt.Sprintf(`Object.getOwnPropertyNames(%s)%s`, def, chainFilterSuffix(def, filter))
	}

	res, err := o.run(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return toStrings(res), nil
}

func chainFilterSuffix(def string, filter typeFilter) string {
	switch filter {
	case filterFuncs:
		return fmt.Sprintf(`.filter(p => typeof(%s[p]) === "function")`, def)
	case filterProps:
		return fmt.Sprintf(`.filter(p => typeof(%s[p]) !== "function")`, def)
	default:
		return ""
	}
}

// Populate resolves every own attribute into a map, caching each
// resolution. IfFunc/IfProp overrides narrow which kinds are enumerated.
func (o *Object) Populate(ctx context.Context, opts ...InvokeOptions) (map[string]any, error) {
	return o.populate(ctx, false, merge(opts))
}

// PopulateAll resolves every attribute of the object and its prototype
// chain into a map, caching each resolution.
func (o *Object) PopulateAll(ctx context.Context, opts ...InvokeOptions) (map[string]any, error) {
	return o.populate(ctx, true, merge(opts))
}

func (o *Object) populate(ctx context.Context, chain bool, opt InvokeOptions) (map[string]any, error) {
	ifFunc := pick(opt.IfFunc, true)
	ifProp := pick(opt.IfProp, true)

	var filter typeFilter
	switch {
	case ifFunc && !ifProp:
		filter = filterFuncs
	case ifProp && !ifFunc:
		filter = filterProps
	}

	names, err := o.enumerate(ctx, chain, filter)
	if err != nil {
		return nil, err
	}

	resolve := InvokeOptions{
		Cache:     Bool(true),
		IfFunc:    Bool(ifFunc),
		IfProp:    Bool(ifProp),
		Overwrite: Bool(true),
	}

	out := make(map[string]any, len(names))
	for _, name := range names {
		val, err := o.Get(ctx, name, resolve)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", name, err)
		}
		out[name] = val
	}
	return out, nil
}

// WrapAll resolves every own attribute into a proxy: *Func for functions,
// *Getter for properties. Unlike Populate, property values are not fetched.
func (o *Object) WrapAll(ctx context.Context, opts ...InvokeOptions) (map[string]any, error) {
	return o.wrapAttrs(ctx, false, merge(opts))
}

// WrapAllChain resolves every attribute of the object and its prototype
// chain into a proxy, like WrapAll but over AllFunctions/AllProperties.
func (o *Object) WrapAllChain(ctx context.Context, opts ...InvokeOptions) (map[string]any, error) {
	return o.wrapAttrs(ctx, true, merge(opts))
}

func (o *Object) wrapAttrs(ctx context.Context, chain bool, opt InvokeOptions) (map[string]any, error) {
	ifFunc := pick(opt.IfFunc, true)
	ifProp := pick(opt.IfProp, true)

	listProps := o.Properties
	listFuncs := o.Functions
	if chain {
		listProps = o.AllProperties
		listFuncs = o.AllFunctions
	}

	out := make(map[string]any)

	if ifProp {
		props, err := listProps(ctx)
		if err != nil {
			return nil, err
		}
		for _, name := range props {
			getter, err := o.Property(ctx, name)
			if err != nil {
				return nil, err
			}
			if getter != nil {
				out[name] = getter
			}
		}
	}

	if ifFunc {
		funcs, err := listFuncs(ctx)
		if err != nil {
			return nil, err
		}
		for _, name := range funcs {
			f, err := o.wrapFunc(ctx, name)
			if err != nil {
				return nil, err
			}
			if f != nil {
				out[name] = f
			}
		}
	}

	return out, nil
}

func toStrings(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
