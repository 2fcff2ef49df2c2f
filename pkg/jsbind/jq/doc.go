// Package jq binds the jQuery `$` function running in a remote browser
// session. It is a thin dispatch layer over the jsbind core: a query is
// either a selector string (one remote round trip), a driver element handle,
// or a slice of handles, and in every case the result is shaped into
// Element and Response wrappers.
//
// A Response defers failure: a query that failed remotely is captured, not
// surfaced. OK never fails and Err inspects the capture, so calling code can
// write `if resp.OK()` without guarding, while every other accessor on a
// failed response returns the original captured error, the same error
// value, so errors.Is against the real remote cause still matches.
//
// Element detection is the driver's business. A driver whose executor also
// implements ElementIdentifier (the Playwright driver in pkg/browser does)
// lets Query recognize handles inside raw results.
package jq
