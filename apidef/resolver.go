package apidef

import "github.com/apiweave/docgen/document"

// SchemaResolver is the reflection boundary: it turns fully-qualified
// type names into structural schemas and exposes the authoritative
// ordered type-parameter list for generic types.
//
// Implementations must be safe for concurrent read access when callers
// enable parallel operation processing.
type SchemaResolver interface {
	// Resolve returns the structural schema for the named type, or
	// false when the type is not found in any searched source.
	Resolve(name string) (*document.Schema, bool)

	// TypeParameters returns the declared type-parameter names of the
	// named type in declaration order, or an empty slice for
	// non-generic types.
	TypeParameters(name string) []string

	// Sources identifies the metadata sources searched during
	// resolution, for inclusion in type-not-found diagnostics.
	Sources() []string
}
