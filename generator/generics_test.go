package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiweave/docgen/apidef"
	"github.com/apiweave/docgen/docerrors"
)

func TestValidateTypeReference_NonGeneric(t *testing.T) {
	resolver := newFakeResolver().addType("User")
	assert.NoError(t, validateTypeReference(typeRef("User"), resolver))
}

func TestValidateTypeReference_ZeroReference(t *testing.T) {
	resolver := newFakeResolver()
	assert.NoError(t, validateTypeReference(apidef.TypeReference{}, resolver))
}

func TestValidateTypeReference_CorrectOrder(t *testing.T) {
	resolver := newFakeResolver().
		addType("PagedResponse", "T", "TKey").
		addType("User").
		addType("ID")

	ref := genericRef("PagedResponse", arg("T", "User"), arg("TKey", "ID"))
	assert.NoError(t, validateTypeReference(ref, resolver))
}

func TestValidateTypeReference_NoArguments(t *testing.T) {
	resolver := newFakeResolver().addType("Response", "T")

	err := validateTypeReference(typeRef("Response"), resolver)
	require.Error(t, err)

	var undocumented *docerrors.UndocumentedGenericTypeError
	require.ErrorAs(t, err, &undocumented)
	assert.Equal(t, []string{"T"}, undocumented.Missing)
	assert.True(t, errors.Is(err, docerrors.ErrOperationScoped))
}

func TestValidateTypeReference_UnorderedArguments(t *testing.T) {
	resolver := newFakeResolver().
		addType("PagedResponse", "T", "TKey").
		addType("User").
		addType("ID")

	ref := genericRef("PagedResponse", arg("TKey", "ID"), arg("T", "User"))
	err := validateTypeReference(ref, resolver)
	require.Error(t, err)

	var unordered *docerrors.UnorderedGenericTypeError
	require.ErrorAs(t, err, &unordered)
	assert.Equal(t, []string{"T", "TKey"}, unordered.Declared)
	assert.Equal(t, []string{"TKey", "T"}, unordered.Supplied)
}

func TestValidateTypeReference_MissingArgument(t *testing.T) {
	resolver := newFakeResolver().
		addType("PagedResponse", "T", "TKey").
		addType("User")

	ref := genericRef("PagedResponse", arg("T", "User"))
	err := validateTypeReference(ref, resolver)

	var undocumented *docerrors.UndocumentedGenericTypeError
	require.ErrorAs(t, err, &undocumented)
	assert.Equal(t, []string{"TKey"}, undocumented.Missing)
}

func TestValidateTypeReference_NestedArgumentsValidateFirst(t *testing.T) {
	resolver := newFakeResolver().
		addType("Response", "T").
		addType("Page", "TItem").
		addType("User")

	// The outer reference is well-formed, but its argument references
	// Page without Page's own argument. The inner failure surfaces.
	ref := genericRef("Response", apidef.TypeArgument{
		Param: "T",
		Type:  typeRef("Page"),
	})
	err := validateTypeReference(ref, resolver)

	var undocumented *docerrors.UndocumentedGenericTypeError
	require.ErrorAs(t, err, &undocumented)
	assert.Equal(t, "Page", undocumented.Type)
}

func TestValidateTypeReference_InvalidNeverReachesResolver(t *testing.T) {
	resolver := newFakeResolver().
		addType("PagedResponse", "T", "TKey").
		addType("User").
		addType("ID")

	ref := genericRef("PagedResponse", arg("TKey", "ID"), arg("T", "User"))
	require.Error(t, validateTypeReference(ref, resolver))
	// Validation consults TypeParameters only; Resolve is never called
	// for a rejected reference.
	assert.Empty(t, resolver.resolvedNames())
}
