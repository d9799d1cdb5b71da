package apidef

import "strings"

// VariantKey identifies one output document variant. It is the canonical
// rendering of an ordered discriminator tag tuple: tags joined by commas
// in declaration order, repeats dropped.
type VariantKey string

// DefaultVariant is the empty key. Every generation run that has at least
// one candidate operation produces a document for it.
const DefaultVariant VariantKey = ""

// MakeVariantKey builds a VariantKey from discriminator tags, preserving
// declaration order and dropping repeats.
func MakeVariantKey(tags []string) VariantKey {
	if len(tags) == 0 {
		return DefaultVariant
	}
	seen := make(map[string]bool, len(tags))
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		kept = append(kept, tag)
	}
	return VariantKey(strings.Join(kept, ","))
}

// IsDefault reports whether the key is the default (empty) variant.
func (k VariantKey) IsDefault() bool {
	return k == DefaultVariant
}

// Tags splits the key back into its ordered tag values.
func (k VariantKey) Tags() []string {
	if k == DefaultVariant {
		return nil
	}
	return strings.Split(string(k), ",")
}
