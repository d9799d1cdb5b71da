package docerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow scope checks without type assertions.
var (
	// ErrOperationScoped indicates a failure isolated to one documented
	// operation. The operation is dropped; the run continues.
	ErrOperationScoped = errors.New("operation error")

	// ErrDocumentScoped indicates a failure recorded once against the
	// whole generation run.
	ErrDocumentScoped = errors.New("document error")
)

// quoteJoin renders names as `"a", "b", "c"`.
func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}

// InvalidVerbError reports a documented HTTP verb outside the permitted set.
type InvalidVerbError struct {
	// Verb is the offending verb literal as documented
	Verb string
	// Allowed is the permitted verb set
	Allowed []string
}

// Error returns a human-readable error message.
func (e *InvalidVerbError) Error() string {
	msg := fmt.Sprintf("invalid HTTP verb %q", e.Verb)
	if len(e.Allowed) > 0 {
		msg += ": must be one of " + strings.Join(e.Allowed, ", ")
	}
	return msg
}

// Is reports whether target matches this error's scope.
func (e *InvalidVerbError) Is(target error) bool {
	return target == ErrOperationScoped
}

// InvalidURLError reports a URL template that cannot be parsed as a
// well-formed URL.
type InvalidURLError struct {
	// URLTemplate is the offending template string
	URLTemplate string
	// Cause is the underlying parse error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InvalidURLError) Error() string {
	msg := fmt.Sprintf("invalid URL template %q", e.URLTemplate)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InvalidURLError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error's scope.
func (e *InvalidURLError) Is(target error) bool {
	return target == ErrOperationScoped
}

// MissingInAttributeError reports declared parameters whose location could
// not be inferred from the URL template. All unresolvable names of one
// operation are collected into a single error.
type MissingInAttributeError struct {
	// Names are every offending parameter name, in declaration order
	Names []string
}

// Error returns a human-readable error message listing all offending names.
func (e *MissingInAttributeError) Error() string {
	return fmt.Sprintf("missing 'in' attribute for parameter(s) %s: name matches no path placeholder or query key",
		quoteJoin(e.Names))
}

// Is reports whether target matches this error's scope.
func (e *MissingInAttributeError) Is(target error) bool {
	return target == ErrOperationScoped
}

// ConflictingParameterError reports one identifier used both as an inferred
// path placeholder and as a literal query key in the same URL template.
type ConflictingParameterError struct {
	// Name is the doubly-used identifier
	Name string
	// URLTemplate is the offending template
	URLTemplate string
}

// Error returns a human-readable error message.
func (e *ConflictingParameterError) Error() string {
	return fmt.Sprintf("conflicting parameter %q: used as both path placeholder and query key in %q",
		e.Name, e.URLTemplate)
}

// Is reports whether target matches this error's scope.
func (e *ConflictingParameterError) Is(target error) bool {
	return target == ErrOperationScoped
}

// UndocumentedPathParameterError reports a path placeholder with no
// matching parameter declaration, or a declared path parameter absent
// from the template.
type UndocumentedPathParameterError struct {
	// Name is the placeholder or parameter identifier
	Name string
	// URLTemplate is the full URL template
	URLTemplate string
}

// Error returns a human-readable error message.
func (e *UndocumentedPathParameterError) Error() string {
	return fmt.Sprintf("undocumented path parameter %q in %q", e.Name, e.URLTemplate)
}

// Is reports whether target matches this error's scope.
func (e *UndocumentedPathParameterError) Is(target error) bool {
	return target == ErrOperationScoped
}

// UndocumentedGenericTypeError reports a generic type referenced without
// the type arguments its documentation requires.
type UndocumentedGenericTypeError struct {
	// Type is the rendered type reference
	Type string
	// Missing are the declared parameter names left undocumented
	Missing []string
}

// Error returns a human-readable error message.
func (e *UndocumentedGenericTypeError) Error() string {
	msg := fmt.Sprintf("undocumented generic type %q", e.Type)
	if len(e.Missing) > 0 {
		msg += ": missing type argument(s) " + quoteJoin(e.Missing)
	}
	return msg
}

// Is reports whether target matches this error's scope.
func (e *UndocumentedGenericTypeError) Is(target error) bool {
	return target == ErrOperationScoped
}

// UnorderedGenericTypeError reports type arguments supplied out of the
// referenced type's declared parameter order.
type UnorderedGenericTypeError struct {
	// Type is the rendered type reference
	Type string
	// Declared is the authoritative parameter order from type metadata
	Declared []string
	// Supplied is the order the documentation author used
	Supplied []string
}

// Error returns a human-readable error message.
func (e *UnorderedGenericTypeError) Error() string {
	return fmt.Sprintf("unordered generic type %q: arguments documented as (%s) but declared as (%s)",
		e.Type, strings.Join(e.Supplied, ", "), strings.Join(e.Declared, ", "))
}

// Is reports whether target matches this error's scope.
func (e *UnorderedGenericTypeError) Is(target error) bool {
	return target == ErrOperationScoped
}

// InvalidRequestBodyError reports a request body entry without a usable
// cross-reference to its payload type.
type InvalidRequestBodyError struct {
	// Type is the missing or unusable payload type name (may be empty)
	Type string
}

// Error returns a human-readable error message.
func (e *InvalidRequestBodyError) Error() string {
	if e.Type == "" {
		return "invalid request body: missing payload type reference"
	}
	return fmt.Sprintf("invalid request body: no usable reference to payload type %q", e.Type)
}

// Is reports whether target matches this error's scope.
func (e *InvalidRequestBodyError) Is(target error) bool {
	return target == ErrOperationScoped
}

// TypeNotFoundError reports a type reference the schema resolver could
// not resolve from any searched metadata source.
type TypeNotFoundError struct {
	// Type is the unresolved type name
	Type string
	// Sources are the metadata sources that were searched
	Sources []string
}

// Error returns a human-readable error message.
func (e *TypeNotFoundError) Error() string {
	msg := fmt.Sprintf("type %q not found", e.Type)
	if len(e.Sources) > 0 {
		msg += " in searched sources: " + strings.Join(e.Sources, ", ")
	}
	return msg
}

// Is reports whether target matches this error's scope.
func (e *TypeNotFoundError) Is(target error) bool {
	return target == ErrOperationScoped
}

// MissingResponseDescriptionError reports a response declared with empty
// description text.
type MissingResponseDescriptionError struct {
	// StatusCode is the status code of the offending response
	StatusCode string
}

// Error returns a human-readable error message.
func (e *MissingResponseDescriptionError) Error() string {
	return fmt.Sprintf("missing description for response %q", e.StatusCode)
}

// Is reports whether target matches this error's scope.
func (e *MissingResponseDescriptionError) Is(target error) bool {
	return target == ErrOperationScoped
}

// UnableToGenerateAllOperationsError summarizes a run in which one or more
// operations failed to generate.
type UnableToGenerateAllOperationsError struct {
	// Succeeded is the count of operations that produced document entries
	Succeeded int
	// Total is the count of attempted operations
	Total int
}

// Error returns a human-readable error message.
func (e *UnableToGenerateAllOperationsError) Error() string {
	return fmt.Sprintf("unable to generate all operations: succeeded %d of %d operations", e.Succeeded, e.Total)
}

// Is reports whether target matches this error's scope.
func (e *UnableToGenerateAllOperationsError) Is(target error) bool {
	return target == ErrDocumentScoped
}

// NoOperationElementFoundError reports a generation run with zero
// candidate operations.
type NoOperationElementFoundError struct{}

// Error returns a human-readable error message.
func (e *NoOperationElementFoundError) Error() string {
	return "no documented operation elements found"
}

// Is reports whether target matches this error's scope.
func (e *NoOperationElementFoundError) Is(target error) bool {
	return target == ErrDocumentScoped
}
