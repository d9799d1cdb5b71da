package generator

import (
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/apiweave/docgen/apidef"
	"github.com/apiweave/docgen/docerrors"
	"github.com/apiweave/docgen/document"
	"github.com/apiweave/docgen/internal/httputil"
)

// defaultContentType is assumed when a body or response declares none.
const defaultContentType = "application/json"

// operationRecord is the successful output of building one documented
// operation: a document-ready operation plus its grouping identity.
// Owned exclusively by the variant aggregator once built.
type operationRecord struct {
	verb     string // lower-case document method
	path     string // normalized path portion of the URL template
	variants []string
	op       *document.Operation
}

// buildOperation assembles one documented operation into a document-ready
// record. Any failure yields exactly one operation-scoped error; the
// operation is dropped from all output documents while the run continues.
func (g *generation) buildOperation(src apidef.DocumentedOperation) (*operationRecord, error) {
	verb, ok := httputil.NormalizeVerb(src.Verb)
	if !ok {
		return nil, &docerrors.InvalidVerbError{Verb: src.Verb, Allowed: httputil.AllowedVerbs()}
	}

	parsed, err := url.Parse(src.URLTemplate)
	if err != nil {
		return nil, &docerrors.InvalidURLError{URLTemplate: src.URLTemplate, Cause: err}
	}
	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	resolved, err := reconcileParameters(src)
	if err != nil {
		return nil, err
	}

	op := &document.Operation{
		Summary:     src.Summary,
		Description: src.Description,
		OperationID: src.OperationID,
		Deprecated:  src.Deprecated,
		Responses:   make(document.Responses, len(src.Responses)),
	}

	for _, rp := range resolved {
		op.Parameters = append(op.Parameters, g.buildParameter(rp))
	}

	if err := g.buildRequestBodies(src, op); err != nil {
		return nil, err
	}

	if err := g.buildResponses(src, op); err != nil {
		return nil, err
	}

	return &operationRecord{
		verb:     verb,
		path:     path,
		variants: src.Variants,
		op:       op,
	}, nil
}

// buildRequestBodies validates and resolves every request body entry and
// attaches the result to op in the shape the target version expects.
func (g *generation) buildRequestBodies(src apidef.DocumentedOperation, op *document.Operation) error {
	if len(src.RequestBodies) == 0 {
		return nil
	}

	// Every body entry needs a usable cross-reference to its payload type.
	for _, body := range src.RequestBodies {
		if body.Type.Name == "" {
			return &docerrors.InvalidRequestBodyError{Type: body.Type.String()}
		}
	}

	if g.cfg.version.IsOAS2() {
		return g.buildOAS2Body(src, op)
	}

	requestBody := &document.RequestBody{
		Content: make(map[string]*document.MediaType),
	}
	for _, body := range src.RequestBodies {
		ref, err := g.resolveTypeRef(body.Type)
		if err != nil {
			return err
		}
		if body.Required {
			requestBody.Required = true
		}
		if body.Description != "" && requestBody.Description == "" {
			requestBody.Description = body.Description
		}
		for _, ct := range contentTypesOrDefault(body.ContentTypes) {
			requestBody.Content[ct] = &document.MediaType{Schema: ref}
		}
	}
	op.RequestBody = requestBody
	return nil
}

// buildOAS2Body maps request body entries onto a Swagger 2.0 body
// parameter plus the operation's consumes list.
func (g *generation) buildOAS2Body(src apidef.DocumentedOperation, op *document.Operation) error {
	var bodySchema *document.Schema
	var required bool
	var description string
	var consumes []string

	for _, body := range src.RequestBodies {
		ref, err := g.resolveTypeRef(body.Type)
		if err != nil {
			return err
		}
		if bodySchema == nil {
			bodySchema = ref
			required = body.Required
			description = body.Description
		}
		for _, ct := range contentTypesOrDefault(body.ContentTypes) {
			if !slices.Contains(consumes, ct) {
				consumes = append(consumes, ct)
			}
		}
	}

	op.Consumes = consumes
	op.Parameters = append(op.Parameters, &document.Parameter{
		Name:        "body",
		In:          string(apidef.LocationBody),
		Description: description,
		Required:    required,
		Schema:      bodySchema,
	})
	return nil
}

// buildResponses validates and resolves every response entry, in status
// code order for deterministic output.
func (g *generation) buildResponses(src apidef.DocumentedOperation, op *document.Operation) error {
	var produces []string

	for _, code := range slices.Sorted(maps.Keys(src.Responses)) {
		spec := src.Responses[code]
		if !httputil.ValidateStatusCode(code) {
			g.logger.Warn("nonstandard response status code", "code", code, "path", src.URLTemplate)
		}
		if strings.TrimSpace(spec.Description) == "" {
			return &docerrors.MissingResponseDescriptionError{StatusCode: code}
		}

		resp := &document.Response{Description: spec.Description}
		for name, desc := range spec.Headers {
			if resp.Headers == nil {
				resp.Headers = make(map[string]*document.Header, len(spec.Headers))
			}
			resp.Headers[name] = g.buildHeader(desc)
		}

		if !spec.Type.IsZero() {
			ref, err := g.resolveTypeRef(spec.Type)
			if err != nil {
				return err
			}
			if g.cfg.version.IsOAS2() {
				resp.Schema = ref
				for _, ct := range contentTypesOrDefault(spec.ContentTypes) {
					if !slices.Contains(produces, ct) {
						produces = append(produces, ct)
					}
				}
			} else {
				resp.Content = make(map[string]*document.MediaType)
				for _, ct := range contentTypesOrDefault(spec.ContentTypes) {
					resp.Content[ct] = &document.MediaType{Schema: ref}
				}
			}
		}

		op.Responses[code] = resp
	}

	op.Produces = produces
	return nil
}

// resolveTypeRef validates a type reference's generic arguments and then
// resolves it into a $ref schema, registering definitions on the way.
func (g *generation) resolveTypeRef(ref apidef.TypeReference) (*document.Schema, error) {
	if err := validateTypeReference(ref, g.resolver); err != nil {
		return nil, err
	}
	return g.registry.resolve(ref)
}

// buildParameter converts one reconciled parameter declaration into the
// document shape the target version expects.
func (g *generation) buildParameter(rp resolvedParameter) *document.Parameter {
	p := &document.Parameter{
		Name:        rp.spec.Name,
		In:          string(rp.in),
		Description: rp.spec.Description,
		// Path parameters are always required.
		Required: rp.spec.Required || rp.in == apidef.LocationPath,
	}

	typ, format := primitiveType(rp.spec.Type.Name)
	if g.cfg.version.IsOAS2() {
		if rp.spec.IsArray {
			p.Type = "array"
			p.Items = &document.Items{Type: typ, Format: format}
			p.CollectionFormat = "multi"
		} else {
			p.Type = typ
			p.Format = format
		}
		return p
	}

	schema := &document.Schema{Type: typ, Format: format}
	if rp.spec.IsArray {
		schema = document.ArraySchema(schema)
	}
	p.Schema = schema
	return p
}

// buildHeader converts a documented response header description into the
// document shape the target version expects. Header values are strings.
func (g *generation) buildHeader(description string) *document.Header {
	h := &document.Header{Description: description}
	if g.cfg.version.IsOAS2() {
		h.Type = "string"
	} else {
		h.Schema = &document.Schema{Type: "string"}
	}
	return h
}

// contentTypesOrDefault returns cts, or the default content type when the
// declaration lists none.
func contentTypesOrDefault(cts []string) []string {
	if len(cts) == 0 {
		return []string{defaultContentType}
	}
	return cts
}

// primitiveType maps a documented parameter type name to its OpenAPI
// primitive type and format. Unrecognized names fall back to string.
func primitiveType(name string) (typ, format string) {
	switch strings.ToLower(lastSegment(name)) {
	case "int", "int32", "integer":
		return "integer", "int32"
	case "long", "int64":
		return "integer", "int64"
	case "float", "single":
		return "number", "float"
	case "double", "decimal", "number":
		return "number", "double"
	case "bool", "boolean":
		return "boolean", ""
	case "byte":
		return "string", "byte"
	case "date":
		return "string", "date"
	case "datetime", "datetimeoffset":
		return "string", "date-time"
	case "uuid", "guid":
		return "string", "uuid"
	default:
		return "string", ""
	}
}

// lastSegment strips namespace qualifiers from a type name.
func lastSegment(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
