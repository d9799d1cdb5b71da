// Package httputil provides HTTP-related validation utilities and constants.
package httputil

import (
	"strconv"
	"strings"
)

// HTTP status code boundaries.
const (
	statusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	minStatusCode    = 100 // Minimum valid HTTP status code
	maxStatusCode    = 599 // Maximum valid HTTP status code
	wildcardChar     = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
)

// HTTP method constants as they appear in document path items.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// allowedVerbs is the permitted verb set for documented operations.
// Keys are upper-case as declared in documentation sources.
var allowedVerbs = map[string]string{
	"GET":     MethodGet,
	"PUT":     MethodPut,
	"POST":    MethodPost,
	"DELETE":  MethodDelete,
	"OPTIONS": MethodOptions,
	"HEAD":    MethodHead,
	"PATCH":   MethodPatch,
	"TRACE":   MethodTrace,
}

// NormalizeVerb maps a documented HTTP verb to its lower-case document form.
// Matching is case-insensitive. Returns false for verbs outside the
// permitted set.
func NormalizeVerb(verb string) (string, bool) {
	m, ok := allowedVerbs[strings.ToUpper(verb)]
	return m, ok
}

// AllowedVerbs returns the permitted verb set in upper-case form.
func AllowedVerbs() []string {
	return []string{"GET", "PUT", "POST", "DELETE", "OPTIONS", "HEAD", "PATCH", "TRACE"}
}

// ValidateStatusCode checks if a status code string is valid for a response map.
// Valid values are:
//   - "default" for default response
//   - Wildcard patterns: 1XX, 2XX, 3XX, 4XX, 5XX
//   - Numeric codes: 100-599
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}

	if len(code) != statusCodeLength {
		return false
	}

	// Wildcard patterns (e.g., "2XX", "4XX")
	if code[1] == wildcardChar && code[2] == wildcardChar {
		return code[0] >= '1' && code[0] <= '5'
	}

	statusCode, err := strconv.Atoi(code)
	return err == nil && statusCode >= minStatusCode && statusCode <= maxStatusCode
}
