package generator

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/apiweave/docgen/apidef"
)

// NamingStrategy defines how generic type references are flattened into
// reusable definition names. Bracket characters are not valid in
// definition names, so generic references must be rewritten.
type NamingStrategy int

const (
	// NamingOf uses "Of" separators between base type and arguments.
	// Example: Response[T:User] -> ResponseOfUser
	NamingOf NamingStrategy = iota

	// NamingUnderscore replaces brackets with underscores.
	// Example: Response[T:User] -> Response_User_
	NamingUnderscore

	// NamingFlattened removes brackets entirely.
	// Example: Response[T:User] -> ResponseUser
	NamingFlattened
)

// String returns the string representation of a NamingStrategy.
func (s NamingStrategy) String() string {
	switch s {
	case NamingOf:
		return "of"
	case NamingUnderscore:
		return "underscore"
	case NamingFlattened:
		return "flattened"
	default:
		return "unknown"
	}
}

// definitionNamer flattens type references into definition names.
type definitionNamer struct {
	strategy NamingStrategy
	caser    cases.Caser
}

func newDefinitionNamer(strategy NamingStrategy) *definitionNamer {
	return &definitionNamer{
		strategy: strategy,
		caser:    cases.Title(language.English, cases.NoLower),
	}
}

// DefinitionName renders ref as a reusable definition name. Namespace
// qualifiers are folded into PascalCase segments, so "models.User"
// becomes "ModelsUser" and "Response[T:models.User]" becomes
// "ResponseOfModelsUser" under the default strategy.
func (n *definitionNamer) DefinitionName(ref apidef.TypeReference) string {
	base := n.pascalCase(ref.Name)
	if len(ref.Args) == 0 {
		return base
	}

	argNames := make([]string, len(ref.Args))
	for i, arg := range ref.Args {
		argNames[i] = n.DefinitionName(arg.Type)
	}

	switch n.strategy {
	case NamingUnderscore:
		return base + "_" + strings.Join(argNames, "_") + "_"
	case NamingFlattened:
		return base + strings.Join(argNames, "")
	default:
		return base + "Of" + strings.Join(argNames, "AndOf")
	}
}

// pascalCase folds separator characters and capitalizes the rune that
// follows each of them, using x/text for Unicode-correct title casing.
func (n *definitionNamer) pascalCase(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	capitalizeNext := true
	for _, r := range s {
		if r == '.' || r == '_' || r == '-' || r == '/' || r == '+' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteString(n.caser.String(string(r)))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
