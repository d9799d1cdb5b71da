package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiweave/docgen/apidef"
	"github.com/apiweave/docgen/docerrors"
	"github.com/apiweave/docgen/document"
)

// newTestGeneration builds a run context around the fake resolver for
// exercising the operation builder directly.
func newTestGeneration(t *testing.T, version document.OASVersion, resolver apidef.SchemaResolver) *generation {
	t.Helper()
	cfg, err := applyOptions(WithVersion(version))
	require.NoError(t, err)
	return &generation{
		cfg:        cfg,
		resolver:   resolver,
		registry:   newSchemaRegistry(resolver, newDefinitionNamer(cfg.genericNaming), cfg.version),
		aggregator: newVariantAggregator(),
		collector:  newCollector(1),
		logger:     cfg.logger,
	}
}

func TestBuildOperation_OAS3(t *testing.T) {
	resolver := newFakeResolver().addType("Sample").addType("SampleInput")
	g := newTestGeneration(t, document.OASVersion303, resolver)

	rec, err := g.buildOperation(apidef.DocumentedOperation{
		Verb:        "GET",
		URLTemplate: "/v1/samples/{id}?limit=25",
		OperationID: "getSample",
		Summary:     "Fetch one sample",
		Parameters: []apidef.ParameterSpec{
			{Name: "id", Type: typeRef("int")},
			{Name: "limit", Type: typeRef("int32")},
		},
		Responses: map[string]apidef.ResponseSpec{
			"200": {
				Description: "the sample",
				Type:        typeRef("Sample"),
				Headers:     map[string]string{"X-Rate-Limit": "remaining calls"},
			},
			"404": {Description: "not found"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "get", rec.verb)
	assert.Equal(t, "/v1/samples/{id}", rec.path)
	assert.Equal(t, "getSample", rec.op.OperationID)

	require.Len(t, rec.op.Parameters, 2)
	idParam := rec.op.Parameters[0]
	assert.Equal(t, "id", idParam.Name)
	assert.Equal(t, "path", idParam.In)
	assert.True(t, idParam.Required, "path parameters are always required")
	require.NotNil(t, idParam.Schema)
	assert.Equal(t, "integer", idParam.Schema.Type)

	require.Contains(t, rec.op.Responses, "200")
	resp := rec.op.Responses["200"]
	assert.Equal(t, "the sample", resp.Description)
	require.Contains(t, resp.Content, "application/json")
	assert.Equal(t, "#/components/schemas/Sample", resp.Content["application/json"].Schema.Ref)
	require.Contains(t, resp.Headers, "X-Rate-Limit")
	require.NotNil(t, resp.Headers["X-Rate-Limit"].Schema)
	assert.Equal(t, "string", resp.Headers["X-Rate-Limit"].Schema.Type)

	require.Contains(t, rec.op.Responses, "404")
	assert.Nil(t, rec.op.Responses["404"].Content, "bodyless response has no content")
}

func TestBuildOperation_OAS3RequestBody(t *testing.T) {
	resolver := newFakeResolver().addType("SampleInput")
	g := newTestGeneration(t, document.OASVersion303, resolver)

	rec, err := g.buildOperation(apidef.DocumentedOperation{
		Verb:        "POST",
		URLTemplate: "/v1/samples",
		RequestBodies: []apidef.RequestBodySpec{
			{ContentTypes: []string{"application/json", "application/xml"}, Type: typeRef("SampleInput"), Required: true},
		},
		Responses: map[string]apidef.ResponseSpec{
			"201": {Description: "created"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, rec.op.RequestBody)
	assert.True(t, rec.op.RequestBody.Required)
	require.Contains(t, rec.op.RequestBody.Content, "application/json")
	require.Contains(t, rec.op.RequestBody.Content, "application/xml")
	assert.Equal(t, "#/components/schemas/SampleInput",
		rec.op.RequestBody.Content["application/json"].Schema.Ref)
}

func TestBuildOperation_OAS2(t *testing.T) {
	resolver := newFakeResolver().addType("Sample").addType("SampleInput")
	g := newTestGeneration(t, document.OASVersion20, resolver)

	rec, err := g.buildOperation(apidef.DocumentedOperation{
		Verb:        "PUT",
		URLTemplate: "/v1/samples/{id}?tags=a",
		Parameters: []apidef.ParameterSpec{
			{Name: "id", Type: typeRef("long")},
			{Name: "tags", Type: typeRef("string"), IsArray: true},
		},
		RequestBodies: []apidef.RequestBodySpec{
			{Type: typeRef("SampleInput"), Required: true, Description: "replacement sample"},
		},
		Responses: map[string]apidef.ResponseSpec{
			"200": {Description: "updated", Type: typeRef("Sample"), ContentTypes: []string{"application/json"}},
		},
	})
	require.NoError(t, err)

	require.Len(t, rec.op.Parameters, 3)
	idParam := rec.op.Parameters[0]
	assert.Equal(t, "integer", idParam.Type)
	assert.Equal(t, "int64", idParam.Format)
	assert.Nil(t, idParam.Schema, "OAS2 primitive parameters carry type/format directly")

	tagsParam := rec.op.Parameters[1]
	assert.Equal(t, "array", tagsParam.Type)
	require.NotNil(t, tagsParam.Items)
	assert.Equal(t, "string", tagsParam.Items.Type)
	assert.Equal(t, "multi", tagsParam.CollectionFormat)

	bodyParam := rec.op.Parameters[2]
	assert.Equal(t, "body", bodyParam.In)
	assert.Equal(t, "body", bodyParam.Name)
	assert.True(t, bodyParam.Required)
	require.NotNil(t, bodyParam.Schema)
	assert.Equal(t, "#/definitions/SampleInput", bodyParam.Schema.Ref)

	assert.Equal(t, []string{"application/json"}, rec.op.Consumes)
	assert.Equal(t, []string{"application/json"}, rec.op.Produces)

	resp := rec.op.Responses["200"]
	require.NotNil(t, resp.Schema)
	assert.Equal(t, "#/definitions/Sample", resp.Schema.Ref)
	assert.Nil(t, resp.Content, "OAS2 responses carry schema, not content")
}

func TestBuildOperation_Failures(t *testing.T) {
	resolver := newFakeResolver().addType("Sample")

	tests := []struct {
		name   string
		op     apidef.DocumentedOperation
		target any
	}{
		{
			name:   "invalid verb",
			op:     apidef.DocumentedOperation{Verb: "Invalid", URLTemplate: "/v1/samples"},
			target: new(*docerrors.InvalidVerbError),
		},
		{
			name:   "invalid url",
			op:     apidef.DocumentedOperation{Verb: "GET", URLTemplate: "://bad\x7f"},
			target: new(*docerrors.InvalidURLError),
		},
		{
			name: "empty response description",
			op: apidef.DocumentedOperation{
				Verb:        "GET",
				URLTemplate: "/v1/samples",
				Responses:   map[string]apidef.ResponseSpec{"400": {Description: "   "}},
			},
			target: new(*docerrors.MissingResponseDescriptionError),
		},
		{
			name: "request body without type",
			op: apidef.DocumentedOperation{
				Verb:          "POST",
				URLTemplate:   "/v1/samples",
				RequestBodies: []apidef.RequestBodySpec{{ContentTypes: []string{"application/json"}}},
			},
			target: new(*docerrors.InvalidRequestBodyError),
		},
		{
			name: "unknown response type",
			op: apidef.DocumentedOperation{
				Verb:        "GET",
				URLTemplate: "/v1/samples",
				Responses: map[string]apidef.ResponseSpec{
					"200": {Description: "ok", Type: typeRef("Mystery")},
				},
			},
			target: new(*docerrors.TypeNotFoundError),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGeneration(t, document.OASVersion303, resolver)
			_, err := g.buildOperation(tt.op)
			require.Error(t, err)
			assert.True(t, errors.As(err, tt.target), "unexpected error type: %v", err)
			assert.True(t, errors.Is(err, docerrors.ErrOperationScoped))
		})
	}
}

func TestBuildOperation_TypeNotFoundCarriesSources(t *testing.T) {
	resolver := newFakeResolver()
	resolver.sources = []string{"assembly-a", "assembly-b"}
	g := newTestGeneration(t, document.OASVersion303, resolver)

	_, err := g.buildOperation(apidef.DocumentedOperation{
		Verb:        "GET",
		URLTemplate: "/v1/samples",
		Responses: map[string]apidef.ResponseSpec{
			"200": {Description: "ok", Type: typeRef("Mystery")},
		},
	})

	var notFound *docerrors.TypeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Mystery", notFound.Type)
	assert.Equal(t, []string{"assembly-a", "assembly-b"}, notFound.Sources)
}

func TestBuildOperation_GenericDefinitionRegistered(t *testing.T) {
	resolver := newFakeResolver().
		addType("Response", "T").
		addType("Sample")
	g := newTestGeneration(t, document.OASVersion303, resolver)

	rec, err := g.buildOperation(apidef.DocumentedOperation{
		Verb:        "GET",
		URLTemplate: "/v1/samples",
		Responses: map[string]apidef.ResponseSpec{
			"200": {Description: "ok", Type: genericRef("Response", arg("T", "Sample"))},
		},
	})
	require.NoError(t, err)

	resp := rec.op.Responses["200"]
	assert.Equal(t, "#/components/schemas/ResponseOfSample",
		resp.Content["application/json"].Schema.Ref)

	defs := g.registry.definitions()
	assert.Contains(t, defs, "ResponseOfSample")
	assert.Contains(t, defs, "Sample", "argument types become definitions too")
}

func TestPrimitiveType(t *testing.T) {
	tests := []struct {
		in         string
		wantType   string
		wantFormat string
	}{
		{"int", "integer", "int32"},
		{"System.Int64", "integer", "int64"},
		{"float", "number", "float"},
		{"decimal", "number", "double"},
		{"bool", "boolean", ""},
		{"DateTime", "string", "date-time"},
		{"Guid", "string", "uuid"},
		{"SomethingCustom", "string", ""},
		{"", "string", ""},
	}
	for _, tt := range tests {
		typ, format := primitiveType(tt.in)
		assert.Equal(t, tt.wantType, typ, "type for %q", tt.in)
		assert.Equal(t, tt.wantFormat, format, "format for %q", tt.in)
	}
}
