package generator

import "fmt"

// Filter is a caller-registered post-processor that runs against an
// assembled document before it is returned. A filter receives the
// document value (*document.OAS2Document or *document.OAS3Document) and
// returns the document to carry forward, which may be the same value
// mutated in place or a replacement.
//
// Filters run in registration order. Filters are caller-supplied and
// outside engine control, so a filter error aborts the whole run.
type Filter func(doc any) (any, error)

// applyFilters runs every registered filter over doc in order.
func applyFilters(filters []Filter, doc any) (any, error) {
	for i, f := range filters {
		next, err := f(doc)
		if err != nil {
			return nil, fmt.Errorf("generator: document filter %d failed: %w", i, err)
		}
		doc = next
	}
	return doc, nil
}
