package render

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/apiweave/docgen/document"
)

// Encode serializes doc in the requested format. JSON output is indented
// with two spaces; YAML uses the default block style.
func Encode(doc any, format document.SourceFormat) ([]byte, error) {
	switch format {
	case document.SourceFormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("render: JSON encoding failed: %w", err)
		}
		return data, nil
	case document.SourceFormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("render: YAML encoding failed: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("render: unsupported format %q", format)
	}
}

// DecodeOAS2 reads a Swagger 2.0 document from data.
func DecodeOAS2(data []byte, format document.SourceFormat) (*document.OAS2Document, error) {
	var doc document.OAS2Document
	if err := decode(data, format, &doc); err != nil {
		return nil, err
	}
	if doc.Swagger != "2.0" {
		return nil, fmt.Errorf("render: not a Swagger 2.0 document: swagger=%q", doc.Swagger)
	}
	doc.OASVersion = document.OASVersion20
	return &doc, nil
}

// DecodeOAS3 reads an OpenAPI 3.x document from data.
func DecodeOAS3(data []byte, format document.SourceFormat) (*document.OAS3Document, error) {
	var doc document.OAS3Document
	if err := decode(data, format, &doc); err != nil {
		return nil, err
	}
	version, ok := document.ParseVersion(doc.OpenAPI)
	if !ok || version.IsOAS2() {
		return nil, fmt.Errorf("render: not an OpenAPI 3.x document: openapi=%q", doc.OpenAPI)
	}
	doc.OASVersion = version
	return &doc, nil
}

func decode(data []byte, format document.SourceFormat, out any) error {
	switch format {
	case document.SourceFormatJSON:
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("render: JSON decoding failed: %w", err)
		}
		return nil
	case document.SourceFormatYAML:
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("render: YAML decoding failed: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("render: unsupported format %q", format)
	}
}
