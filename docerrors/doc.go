// Package docerrors provides structured error types for docgen.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between the two scopes of
// generation failure and react to individual error kinds.
//
// # Error Scopes
//
//   - Operation-scoped: recorded against one documented operation, which is
//     dropped from all output documents while the run continues. Matched by
//     errors.Is(err, docerrors.ErrOperationScoped).
//   - Document-scoped: recorded once per generation run, after every
//     operation has been attempted. Matched by
//     errors.Is(err, docerrors.ErrDocumentScoped).
//
// # Usage with errors.As
//
//	result, err := generator.Generate(ops, resolver)
//	for _, diag := range result.Diagnostics.Operations {
//	    for _, opErr := range diag.Errors {
//	        var verbErr *docerrors.InvalidVerbError
//	        if errors.As(opErr, &verbErr) {
//	            // Handle the unrecognized verb specifically
//	        }
//	    }
//	}
package docerrors
