package jsbind

import (
	"errors"
	"fmt"
)

// ErrInvalidAttribute is the sentinel matched by every InvalidAttributeError.
var ErrInvalidAttribute = errors.New("invalid javascript attribute")

// InvalidAttributeError reports invalid local usage: a malformed identifier,
// an empty attribute name, or a name invoked with function semantics that
// does not resolve to a remote function. It is always detected before or
// instead of a remote failure; remote errors pass through untouched.
type InvalidAttributeError struct {
	// Name is the offending attribute or identifier, possibly empty.
	Name string

	// Reason describes why the usage was rejected.
	Reason string
}

func (e *InvalidAttributeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid javascript attribute: %s", e.Reason)
	}
	return fmt.Sprintf("invalid javascript attribute %q: %s", e.Name, e.Reason)
}

// Is reports a match against ErrInvalidAttribute.
func (e *InvalidAttributeError) Is(target error) bool {
	return target == ErrInvalidAttribute
}

func invalidAttr(name, reason string) *InvalidAttributeError {
	return &InvalidAttributeError{Name: name, Reason: reason}
}
