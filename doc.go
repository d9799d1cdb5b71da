// Package docgen turns annotation-derived API operation metadata into
// validated, versioned OpenAPI documents.
//
// The module is organized as a set of focused packages:
//
//   - apidef: the input model handed to the engine by extraction and
//     reflection collaborators (documented operations, parameter
//     declarations, type references, and the SchemaResolver boundary)
//   - generator: the generation and validation engine. It reconciles
//     parameter declarations against URL templates, validates generic
//     type references, builds per-operation records, groups them into
//     document variants, and assembles complete documents together
//     with a diagnostics report
//   - document: the OpenAPI document object model for both supported
//     target versions (Swagger 2.0 and OpenAPI 3.x)
//   - docerrors: structured error types with errors.Is/errors.As support
//   - render: JSON and YAML encoding of assembled documents
//
// A single malformed operation never aborts a generation run: the engine
// records a diagnostic for it and keeps going, so callers always receive
// a best-effort document set plus a complete report of what failed and why.
package docgen
