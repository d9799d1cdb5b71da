package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefinitionName(t *testing.T) {
	single := genericRef("Response", arg("T", "User"))
	paged := genericRef("PagedResponse", arg("T", "User"), arg("TKey", "ID"))

	tests := []struct {
		name       string
		strategy   NamingStrategy
		wantSingle string
		wantPaged  string
	}{
		{name: "of", strategy: NamingOf, wantSingle: "ResponseOfUser", wantPaged: "PagedResponseOfUserAndOfID"},
		{name: "underscore", strategy: NamingUnderscore, wantSingle: "Response_User_", wantPaged: "PagedResponse_User_ID_"},
		{name: "flattened", strategy: NamingFlattened, wantSingle: "ResponseUser", wantPaged: "PagedResponseUserID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			namer := newDefinitionNamer(tt.strategy)
			assert.Equal(t, tt.wantSingle, namer.DefinitionName(single))
			assert.Equal(t, tt.wantPaged, namer.DefinitionName(paged))
		})
	}
}

func TestDefinitionName_NamespaceFolding(t *testing.T) {
	namer := newDefinitionNamer(NamingOf)

	assert.Equal(t, "ModelsUser", namer.DefinitionName(typeRef("models.User")))
	assert.Equal(t, "ApiV2Sample", namer.DefinitionName(typeRef("api/v2/sample")))
	assert.Equal(t, "SnakeCaseName", namer.DefinitionName(typeRef("snake_case_name")))

	nested := genericRef("Response", arg("T", "models.User"))
	assert.Equal(t, "ResponseOfModelsUser", namer.DefinitionName(nested))
}

func TestNamingStrategyString(t *testing.T) {
	assert.Equal(t, "of", NamingOf.String())
	assert.Equal(t, "underscore", NamingUnderscore.String())
	assert.Equal(t, "flattened", NamingFlattened.String())
	assert.Equal(t, "unknown", NamingStrategy(99).String())
}
