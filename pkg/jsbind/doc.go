// Package jsbind lets Go code address JavaScript objects, properties, and
// functions running inside a controlled browser session as if they were
// local values.
//
// Every operation reduces to the same primitive: build a small JavaScript
// snippet, ship it through an Executor, and interpret the returned value.
// The package contributes no engine of its own; the wrapped driver and the
// browser's JavaScript runtime are the real systems; jsbind shapes ergonomic
// attribute access, per-object caching, and error propagation on top of the
// one remote-execution call.
//
// # Object Forms
//
// An Object wraps a remote value in exactly one of two forms, chosen at
// construction and fixed afterward:
//
//  1. Named form: the object is a global-scope identifier, substituted
//     textually into every generated script.
//
//     doc := jsbind.Global(session, "document")
//
//  2. Value form: the object is an opaque handle (for example a driver
//     element handle) passed positionally as arguments[0].
//
//     el := jsbind.Wrap(session, handle)
//
// # Attribute Resolution
//
// Resolving an attribute costs one remote round trip to query its runtime
// type, plus one further trip per invocation for functions (and one for
// arity discovery). There is no local type inference, the remote runtime
// is the only source of truth.
//
//	title, err := doc.Get(ctx, "title")
//	res, err := doc.Call(ctx, "querySelector", "#main")
//
// A name that resolves to neither a function nor a defined property yields
// nil, not an error, unless function semantics were explicitly demanded
// (Call, Func), in which case an InvalidAttributeError is returned.
//
// # Caching
//
// Resolved handles may be memoized per object, keyed by attribute name.
// Caching is a pure optimization with no consistency guarantee against
// out-of-band changes to the remote object; ClearCache discards all
// entries. The cache is not safe for concurrent mutation; callers needing
// concurrent use must serialize access externally.
package jsbind
