package document

// OAS3Document represents an OpenAPI Specification 3.x document
// References:
// - OAS 3.0.3: https://spec.openapis.org/oas/v3.0.3.html
// - OAS 3.1.0: https://spec.openapis.org/oas/v3.1.0.html
type OAS3Document struct {
	OpenAPI      string        `yaml:"openapi" json:"openapi"` // Required: "3.0.x" or "3.1.x"
	Info         *Info         `yaml:"info" json:"info"`       // Required
	Servers      []*Server     `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        Paths         `yaml:"paths" json:"paths"` // Required in 3.0, optional in 3.1+
	Components   *Components   `yaml:"components,omitempty" json:"components,omitempty"`
	Tags         []*Tag        `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OASVersion   OASVersion    `yaml:"-" json:"-"`
}

// Components holds reusable objects for different aspects of the OAS (OAS 3.0+)
type Components struct {
	Schemas       map[string]*Schema      `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses     map[string]*Response    `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters    map[string]*Parameter   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBodies map[string]*RequestBody `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
}
