package apidef

import "strings"

// TypeReference is a resolvable type name plus zero or more ordered type
// arguments for generic/parameterized types.
//
// Argument order is significant: arguments must appear in the exact order
// the underlying type declares its parameters. The authoritative order
// comes from the SchemaResolver, never from the documentation author.
type TypeReference struct {
	// Name is the fully-qualified resolvable type name.
	Name string
	// Args are the documented type arguments, in documented order.
	Args []TypeArgument
}

// TypeArgument binds one documented type argument to the declared type
// parameter it names.
type TypeArgument struct {
	// Param is the declared type-parameter name this argument documents.
	Param string
	// Type is the argument's own type reference, validated recursively.
	Type TypeReference
}

// IsZero reports whether the reference names no type at all.
func (r TypeReference) IsZero() bool {
	return r.Name == "" && len(r.Args) == 0
}

// IsGenericReference reports whether the reference supplies type arguments.
func (r TypeReference) IsGenericReference() bool {
	return len(r.Args) > 0
}

// String renders the reference in a diagnostic-friendly form, e.g.
// "Response[T:User]" or "PagedResult[T:List[T:Sample]]".
func (r TypeReference) String() string {
	if len(r.Args) == 0 {
		return r.Name
	}
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteByte('[')
	for i, arg := range r.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(arg.Param)
		sb.WriteByte(':')
		sb.WriteString(arg.Type.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
