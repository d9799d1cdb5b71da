package document

// SourceFormat identifies a text encoding for document rendering.
type SourceFormat int

const (
	// SourceFormatUnknown represents an unrecognized encoding
	SourceFormatUnknown SourceFormat = iota
	// SourceFormatJSON renders documents as indented JSON
	SourceFormatJSON
	// SourceFormatYAML renders documents as YAML
	SourceFormatYAML
)

func (f SourceFormat) String() string {
	switch f {
	case SourceFormatJSON:
		return "json"
	case SourceFormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format flag value ("json" or "yaml") into a
// SourceFormat, returning false if not recognized.
func ParseFormat(s string) (SourceFormat, bool) {
	switch s {
	case "json":
		return SourceFormatJSON, true
	case "yaml", "yml":
		return SourceFormatYAML, true
	default:
		return SourceFormatUnknown, false
	}
}
