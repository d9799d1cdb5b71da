package apidef

// ParameterLocation identifies where a parameter is carried in a request.
type ParameterLocation string

const (
	// LocationUnspecified marks a declaration whose location must be
	// inferred from the operation's URL template.
	LocationUnspecified ParameterLocation = ""
	// LocationPath marks a path template parameter.
	LocationPath ParameterLocation = "path"
	// LocationQuery marks a query string parameter.
	LocationQuery ParameterLocation = "query"
	// LocationHeader marks a request header parameter.
	LocationHeader ParameterLocation = "header"
	// LocationBody marks a request body payload (OAS 2.0 body parameter).
	LocationBody ParameterLocation = "body"
)

// DocumentedOperation is one logical endpoint occurrence extracted from a
// documentation source. It is immutable once handed to the engine.
type DocumentedOperation struct {
	// Verb is the documented HTTP verb (e.g., "GET"). Validated against
	// the permitted verb set during generation.
	Verb string
	// URLTemplate is the literal URL template, which may contain {name}
	// placeholders and a literal query string.
	URLTemplate string
	// OperationID is an optional unique identifier for the operation.
	OperationID string
	// Summary is a short summary of what the operation does.
	Summary string
	// Description is a verbose explanation of the operation behavior.
	Description string
	// Parameters are the declared parameters in declaration order.
	Parameters []ParameterSpec
	// RequestBodies hold one entry per distinct content-type/body type pair.
	RequestBodies []RequestBodySpec
	// Responses maps status-code strings to response declarations.
	Responses map[string]ResponseSpec
	// Variants are the discriminator tags that route this operation into
	// additional output documents beyond the default one.
	Variants []string
	// Deprecated marks the operation as deprecated.
	Deprecated bool
}

// ParameterSpec is a single declared parameter.
type ParameterSpec struct {
	// Name is the parameter identifier. Must be unique within one
	// operation's final resolved parameter set.
	Name string
	// In is the declared location; LocationUnspecified requests inference
	// from the URL template.
	In ParameterLocation
	// Type references the parameter's value type.
	Type TypeReference
	// Required marks the parameter as mandatory.
	Required bool
	// Description documents the parameter.
	Description string
	// IsArray marks the parameter as carrying repeated values.
	IsArray bool
}

// RequestBodySpec declares one request payload for a set of content types.
type RequestBodySpec struct {
	// ContentTypes lists the media types this payload may be sent as.
	ContentTypes []string
	// Type references the payload type. The reference tag back to the
	// documented type is required; an empty name fails the operation.
	Type TypeReference
	// Description documents the payload.
	Description string
	// Required marks the body as mandatory.
	Required bool
}

// ResponseSpec declares one response of an operation.
type ResponseSpec struct {
	// Description is required non-empty text for the response.
	Description string
	// ContentTypes lists the media types of the response payload.
	// Empty when the response carries no body.
	ContentTypes []string
	// Type references the payload type; the zero TypeReference means the
	// response has no body.
	Type TypeReference
	// Headers documents response headers by name.
	Headers map[string]string
}
