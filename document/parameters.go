package document

// Parameter describes a single operation parameter
type Parameter struct {
	Name        string `yaml:"name" json:"name"`
	In          string `yaml:"in" json:"in"` // "query", "header", "path", "body" (OAS 2.0)
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`

	// Schema describes the parameter value in OAS 3.x, and the body payload
	// for OAS 2.0 "in: body" parameters.
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`

	// OAS 2.0 fields
	Type             string `yaml:"type,omitempty" json:"type,omitempty"`                         // OAS 2.0
	Format           string `yaml:"format,omitempty" json:"format,omitempty"`                     // OAS 2.0
	Items            *Items `yaml:"items,omitempty" json:"items,omitempty"`                       // OAS 2.0
	CollectionFormat string `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"` // OAS 2.0
}

// Items represents items object for array parameters (OAS 2.0)
type Items struct {
	Type   string `yaml:"type" json:"type"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// RequestBody describes a single request body (OAS 3.0+)
type RequestBody struct {
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
}

// Header represents a response header object
type Header struct {
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"` // OAS 3.0+
	Type        string  `yaml:"type,omitempty" json:"type,omitempty"`     // OAS 2.0
}
