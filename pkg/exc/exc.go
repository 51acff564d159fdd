// Package exc defines the exception value routed by the catcher registry
// and the declared type hierarchy used for ancestry matching.
//
// Exception types are plain string identifiers arranged in an explicit,
// application-declared hierarchy. Matching is a membership check against the
// ancestor chain stamped into each exception at construction, so dispatch
// needs no runtime reflection.
package exc

import (
	"fmt"
	"runtime"
)

// Root is the type identifier at the top of every hierarchy. A handler
// registered for Root matches any exception.
const Root = "Exception"

// Exception is a typed value representing an abnormal condition. It carries
// its ancestor chain so the dispatcher can match broad handlers against
// specific exceptions. Exceptions are built once and not modified after
// dispatch begins.
type Exception struct {
	// Type is the exception's own type identifier.
	Type string

	// Ancestry lists the ancestor type identifiers from the immediate
	// parent to the most general, ending in Root.
	Ancestry []string

	// Message is the human-readable description.
	Message string

	// File and Line identify the originating location, when known.
	File string
	Line int

	// Code is an optional numeric code (e.g. a runtime severity).
	Code int

	cause error
}

// New creates an exception of the given type. The optional ancestry lists
// ancestor identifiers from nearest to most general; Root is appended if
// missing. Prefer Hierarchy.New when a declared hierarchy is available.
func New(typeName, message string, ancestry ...string) *Exception {
	return &Exception{
		Type:     typeName,
		Ancestry: normalizeAncestry(typeName, ancestry),
		Message:  message,
	}
}

// Newf creates an exception with a formatted message.
func Newf(typeName, format string, args ...interface{}) *Exception {
	return New(typeName, fmt.Sprintf(format, args...))
}

// NewRoot creates an exception of the root type.
func NewRoot(message string) *Exception {
	return &Exception{Type: Root, Message: message}
}

// FromError converts a Go error into an exception. If err already is an
// *Exception it is returned unchanged; otherwise the error is wrapped as a
// root-typed exception whose cause unwraps to err.
func FromError(err error) *Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Exception); ok {
		return e
	}
	e := NewRoot(err.Error())
	e.cause = err
	return e
}

// Error implements the error interface.
func (e *Exception) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped Go error, if any.
func (e *Exception) Unwrap() error {
	return e.cause
}

// Matches reports whether the exception's type equals target or descends
// from it. This is ancestry matching over declared type identifiers, not
// errors.Is chain traversal.
func (e *Exception) Matches(target string) bool {
	if e.Type == target {
		return true
	}
	for _, a := range e.Ancestry {
		if a == target {
			return true
		}
	}
	return false
}

// WithLocation records the originating file and line. Construction-time only.
func (e *Exception) WithLocation(file string, line int) *Exception {
	e.File = file
	e.Line = line
	return e
}

// WithCode records a numeric code. Construction-time only.
func (e *Exception) WithCode(code int) *Exception {
	e.Code = code
	return e
}

// WithCaller records the caller's file and line. Construction-time only.
func (e *Exception) WithCaller() *Exception {
	if _, file, line, ok := runtime.Caller(1); ok {
		e.File = file
		e.Line = line
	}
	return e
}

// normalizeAncestry guarantees the chain ends in Root for non-root types
func normalizeAncestry(typeName string, ancestry []string) []string {
	if typeName == Root {
		return nil
	}
	for _, a := range ancestry {
		if a == Root {
			return ancestry
		}
	}
	out := make([]string, 0, len(ancestry)+1)
	out = append(out, ancestry...)
	return append(out, Root)
}
