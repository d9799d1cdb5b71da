package document

// OASVersion represents a canonical version of the OpenAPI Specification
// that the generator can target.
type OASVersion int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown OASVersion = iota
	// OASVersion20 OpenAPI Specification Version 2.0 (Swagger)
	OASVersion20
	// OASVersion300 OpenAPI Specification Version 3.0.0
	OASVersion300
	// OASVersion303 OpenAPI Specification Version 3.0.3
	OASVersion303
	// OASVersion310 OpenAPI Specification Version 3.1.0
	OASVersion310
)

var versionToString = map[OASVersion]string{
	OASVersion20:  "2.0",
	OASVersion300: "3.0.0",
	OASVersion303: "3.0.3",
	OASVersion310: "3.1.0",
}

var stringToVersion = func() map[string]OASVersion {
	m := make(map[string]OASVersion, len(versionToString))
	for k, v := range versionToString {
		m[v] = k
	}
	return m
}()

func (v OASVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsValid returns true if this is a valid version
func (v OASVersion) IsValid() bool {
	_, ok := versionToString[v]
	return ok
}

// IsOAS2 returns true for the Swagger 2.0 target.
func (v OASVersion) IsOAS2() bool {
	return v == OASVersion20
}

// ParseVersion will attempt to parse the string s into an OASVersion,
// and returns false if not valid.
func ParseVersion(s string) (OASVersion, bool) {
	v, ok := stringToVersion[s]
	if !ok {
		return Unknown, false
	}
	return v, true
}
