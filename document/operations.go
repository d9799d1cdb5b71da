package document

import "github.com/apiweave/docgen/internal/httputil"

// GetOperations extracts a map of all operations from a PathItem.
// Keys are lower-case HTTP methods; values are nil when not defined.
func GetOperations(pathItem *PathItem) map[string]*Operation {
	return map[string]*Operation{
		httputil.MethodGet:     pathItem.Get,
		httputil.MethodPut:     pathItem.Put,
		httputil.MethodPost:    pathItem.Post,
		httputil.MethodDelete:  pathItem.Delete,
		httputil.MethodOptions: pathItem.Options,
		httputil.MethodHead:    pathItem.Head,
		httputil.MethodPatch:   pathItem.Patch,
		httputil.MethodTrace:   pathItem.Trace,
	}
}

// SetOperation assigns op to the slot for the given lower-case HTTP method.
// An existing operation in the same slot is overwritten; other methods on
// the same path item are left untouched. Returns false for methods outside
// the supported set.
func SetOperation(pathItem *PathItem, method string, op *Operation) bool {
	switch method {
	case httputil.MethodGet:
		pathItem.Get = op
	case httputil.MethodPut:
		pathItem.Put = op
	case httputil.MethodPost:
		pathItem.Post = op
	case httputil.MethodDelete:
		pathItem.Delete = op
	case httputil.MethodOptions:
		pathItem.Options = op
	case httputil.MethodHead:
		pathItem.Head = op
	case httputil.MethodPatch:
		pathItem.Patch = op
	case httputil.MethodTrace:
		pathItem.Trace = op
	default:
		return false
	}
	return true
}

// CountOperations returns the number of defined operations across all paths.
func (p Paths) CountOperations() int {
	var n int
	for _, item := range p {
		if item == nil {
			continue
		}
		for _, op := range GetOperations(item) {
			if op != nil {
				n++
			}
		}
	}
	return n
}
