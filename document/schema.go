package document

// Schema represents a structural schema for a documented type.
// It covers the subset of JSON Schema emitted by schema resolvers:
// object shapes, arrays, enums and primitive types. A Schema with a
// non-empty Ref refers to a reusable definition and carries no other
// fields.
type Schema struct {
	Ref                  string             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type                 string             `yaml:"type,omitempty" json:"type,omitempty"`
	Format               string             `yaml:"format,omitempty" json:"format,omitempty"`
	Title                string             `yaml:"title,omitempty" json:"title,omitempty"`
	Description          string             `yaml:"description,omitempty" json:"description,omitempty"`
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Items                *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	AdditionalProperties *Schema            `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Enum                 []string           `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default              any                `yaml:"default,omitempty" json:"default,omitempty"`
	Example              any                `yaml:"example,omitempty" json:"example,omitempty"`
	Nullable             bool               `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	ReadOnly             bool               `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
}

// RefSchema returns a Schema that references a reusable definition by its
// fully prefixed reference URI (e.g., "#/components/schemas/Name").
func RefSchema(ref string) *Schema {
	return &Schema{Ref: ref}
}

// ArraySchema wraps item into an array schema.
func ArraySchema(item *Schema) *Schema {
	return &Schema{Type: "array", Items: item}
}
