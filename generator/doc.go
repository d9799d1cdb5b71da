// Package generator is the generation and validation engine of docgen.
//
// It takes an ordered sequence of documented operations (package apidef)
// plus a schema resolver, and produces one complete API document per
// variant key together with a diagnostics report describing exactly which
// operations succeeded, which failed, and why.
//
// Per-operation failures are isolated: a malformed operation is dropped
// from every output document and recorded in the diagnostics, while the
// run continues. Only resource-level conditions (a missing resolver, a
// failing caller-supplied filter) abort the whole run.
//
// Basic usage:
//
//	result, err := generator.Generate(ops, resolver,
//	    generator.WithVersion(document.OASVersion303),
//	    generator.WithTitle("Sample API", "1.0.0"),
//	)
//	if err != nil {
//	    return err
//	}
//	doc := result.Documents[apidef.DefaultVariant]
//	for _, diag := range result.Diagnostics.Operations {
//	    if diag.Failed() {
//	        log.Printf("%s: %v", diag.Context, diag.Errors)
//	    }
//	}
package generator
