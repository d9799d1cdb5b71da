// Package apidef defines the input model the generation engine consumes.
//
// Values in this package are produced by external extraction and
// reflection collaborators: documentation comments are parsed into
// DocumentedOperation values, and type metadata is exposed through the
// SchemaResolver boundary. The engine treats every value here as
// immutable once handed over; nothing in this package is retained
// across generation runs.
package apidef
