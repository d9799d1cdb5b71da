package document

// OAS2Document represents an OpenAPI Specification 2.0 (Swagger) document
// Reference: https://swagger.io/specification/v2/
type OAS2Document struct {
	Swagger      string                `yaml:"swagger" json:"swagger"` // Required: must be "2.0"
	Info         *Info                 `yaml:"info" json:"info"`       // Required
	Host         string                `yaml:"host,omitempty" json:"host,omitempty"`
	BasePath     string                `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	Schemes      []string              `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Consumes     []string              `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces     []string              `yaml:"produces,omitempty" json:"produces,omitempty"`
	Paths        Paths                 `yaml:"paths" json:"paths"` // Required
	Definitions  map[string]*Schema    `yaml:"definitions,omitempty" json:"definitions,omitempty"`
	Parameters   map[string]*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Responses    map[string]*Response  `yaml:"responses,omitempty" json:"responses,omitempty"`
	Tags         []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OASVersion   OASVersion            `yaml:"-" json:"-"`
}
