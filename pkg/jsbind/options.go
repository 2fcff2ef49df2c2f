package jsbind

// Options holds per-object caching defaults. The zero value disables
// caching entirely; DefaultOptions is what the constructors apply when no
// options are given.
type Options struct {
	// CacheAttrs is the master toggle: no attribute is cached unless it
	// is set (or a per-call override requests caching).
	CacheAttrs bool

	// CacheFuncs caches resolved function proxies.
	CacheFuncs bool

	// CacheProps caches resolved property getters.
	CacheProps bool

	// Overwrite allows a later resolution to replace a cached entry.
	Overwrite bool
}

// DefaultOptions returns the standard per-object defaults: caching off,
// with functions and properties both eligible and overwrite allowed once
// caching is enabled.
func DefaultOptions() Options {
	return Options{
		CacheAttrs: false,
		CacheFuncs: true,
		CacheProps: true,
		Overwrite:  true,
	}
}

// CacheAll enables caching of both functions and properties.
func CacheAll(overwrite bool) Options {
	return Options{CacheAttrs: true, CacheFuncs: true, CacheProps: true, Overwrite: overwrite}
}

// CacheFuncsOnly enables caching of function proxies only.
func CacheFuncsOnly(overwrite bool) Options {
	return Options{CacheAttrs: true, CacheFuncs: true, Overwrite: overwrite}
}

// CachePropsOnly enables caching of property values only.
func CachePropsOnly(overwrite bool) Options {
	return Options{CacheAttrs: true, CacheProps: true, Overwrite: overwrite}
}

// InvokeOptions carries per-call overrides for a single resolution.
// Nil fields inherit the object's Options; explicit fields win.
type InvokeOptions struct {
	// Cache requests (or suppresses) caching of this resolution.
	Cache *bool

	// IfFunc controls whether a resolved function is eligible for caching.
	IfFunc *bool

	// IfProp controls whether a resolved property is eligible for caching.
	IfProp *bool

	// Overwrite controls replacement of an existing cached entry.
	Overwrite *bool
}

// Bool returns a pointer to b, for populating InvokeOptions fields.
func Bool(b bool) *bool { return &b }

// pick resolves a tri-state override against an object default.
func pick(local *bool, global bool) bool {
	if local != nil {
		return *local
	}
	return global
}

// merge collapses a variadic options slice into one value. Later entries
// win field-by-field.
func merge(opts []InvokeOptions) InvokeOptions {
	var out InvokeOptions
	for _, o := range opts {
		if o.Cache != nil {
			out.Cache = o.Cache
		}
		if o.IfFunc != nil {
			out.IfFunc = o.IfFunc
		}
		if o.IfProp != nil {
			out.IfProp = o.IfProp
		}
		if o.Overwrite != nil {
			out.Overwrite = o.Overwrite
		}
	}
	return out
}
