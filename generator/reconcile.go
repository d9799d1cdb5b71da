package generator

import (
	"github.com/apiweave/docgen/apidef"
	"github.com/apiweave/docgen/docerrors"
	"github.com/apiweave/docgen/internal/pathutil"
)

// resolvedParameter is a declared parameter with its definite location
// assigned.
type resolvedParameter struct {
	spec apidef.ParameterSpec
	in   apidef.ParameterLocation
}

// reconcileParameters merges an operation's declared parameters with its
// URL template, assigning each parameter a definite location or failing
// with one operation-scoped error. Pure function of its input; output
// keeps the original declaration order.
func reconcileParameters(op apidef.DocumentedOperation) ([]resolvedParameter, error) {
	pathParams := pathutil.PathParams(op.URLTemplate)
	queryKeys := pathutil.QueryKeys(op.URLTemplate)

	inPath := make(map[string]bool, len(pathParams))
	for _, p := range pathParams {
		inPath[p] = true
	}
	inQuery := make(map[string]bool, len(queryKeys))
	for _, k := range queryKeys {
		inQuery[k] = true
	}

	// Every literal {name} must have a matching declaration.
	declared := make(map[string]bool, len(op.Parameters))
	for _, p := range op.Parameters {
		if p.In == apidef.LocationPath || p.In == apidef.LocationUnspecified {
			declared[p.Name] = true
		}
	}
	for _, placeholder := range pathParams {
		if !declared[placeholder] {
			return nil, &docerrors.UndocumentedPathParameterError{
				Name:        placeholder,
				URLTemplate: op.URLTemplate,
			}
		}
	}

	resolved := make([]resolvedParameter, 0, len(op.Parameters))
	inferredPath := make([]string, 0, len(pathParams))
	var unresolvable []string

	for _, p := range op.Parameters {
		in := p.In
		switch in {
		case apidef.LocationPath:
			// An explicit path declaration must appear in the template.
			if !inPath[p.Name] {
				return nil, &docerrors.UndocumentedPathParameterError{
					Name:        p.Name,
					URLTemplate: op.URLTemplate,
				}
			}
		case apidef.LocationUnspecified:
			switch {
			case inPath[p.Name]:
				in = apidef.LocationPath
				inferredPath = append(inferredPath, p.Name)
			case inQuery[p.Name]:
				in = apidef.LocationQuery
			default:
				unresolvable = append(unresolvable, p.Name)
				continue
			}
		}
		resolved = append(resolved, resolvedParameter{spec: p, in: in})
	}

	// Report the complete set of unresolvable names, not just the first.
	if len(unresolvable) > 0 {
		return nil, &docerrors.MissingInAttributeError{Names: unresolvable}
	}

	// After assignment: an identifier inferred to path must not double as
	// a literal query key in the same template.
	for _, name := range inferredPath {
		if inQuery[name] {
			return nil, &docerrors.ConflictingParameterError{
				Name:        name,
				URLTemplate: op.URLTemplate,
			}
		}
	}

	// Names are unique within the final resolved set.
	seen := make(map[string]bool, len(resolved))
	for _, r := range resolved {
		if seen[r.spec.Name] {
			return nil, &docerrors.ConflictingParameterError{
				Name:        r.spec.Name,
				URLTemplate: op.URLTemplate,
			}
		}
		seen[r.spec.Name] = true
	}

	return resolved, nil
}
