package generator

import (
	"slices"

	"github.com/apiweave/docgen/apidef"
	"github.com/apiweave/docgen/docerrors"
)

// validateTypeReference verifies argument completeness and ordering for a
// type reference before it may reach the schema resolver. Validation is
// recursive: each argument reference is validated before its parent is
// considered valid. The authoritative parameter order comes from the
// resolver's reflection metadata, never from the documentation author.
func validateTypeReference(ref apidef.TypeReference, resolver apidef.SchemaResolver) error {
	if ref.IsZero() {
		return nil
	}

	// Arguments first: a structurally invalid argument fails the parent.
	for _, arg := range ref.Args {
		if err := validateTypeReference(arg.Type, resolver); err != nil {
			return err
		}
	}

	declared := resolver.TypeParameters(ref.Name)
	if len(declared) == 0 {
		return nil
	}

	if len(ref.Args) == 0 {
		return &docerrors.UndocumentedGenericTypeError{
			Type:    ref.String(),
			Missing: declared,
		}
	}

	supplied := make([]string, len(ref.Args))
	for i, arg := range ref.Args {
		supplied[i] = arg.Param
	}

	if slices.Equal(supplied, declared) {
		return nil
	}

	// Same set, wrong order: the author documented the arguments but not
	// in the type's declared parameter order.
	if sameNameSet(supplied, declared) {
		return &docerrors.UnorderedGenericTypeError{
			Type:     ref.String(),
			Declared: declared,
			Supplied: supplied,
		}
	}

	var missing []string
	suppliedSet := make(map[string]bool, len(supplied))
	for _, s := range supplied {
		suppliedSet[s] = true
	}
	for _, d := range declared {
		if !suppliedSet[d] {
			missing = append(missing, d)
		}
	}
	return &docerrors.UndocumentedGenericTypeError{
		Type:    ref.String(),
		Missing: missing,
	}
}

// sameNameSet reports whether a and b contain the same names, ignoring order.
func sameNameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]int, len(a))
	for _, s := range a {
		set[s]++
	}
	for _, s := range b {
		if set[s] == 0 {
			return false
		}
		set[s]--
	}
	return true
}
