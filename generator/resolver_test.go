package generator

import (
	"sync"

	"github.com/apiweave/docgen/apidef"
	"github.com/apiweave/docgen/document"
)

// fakeResolver is an in-memory SchemaResolver for tests. It records every
// Resolve call so tests can assert which references reached it.
type fakeResolver struct {
	mu       sync.Mutex
	schemas  map[string]*document.Schema
	params   map[string][]string
	sources  []string
	resolved []string
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		schemas: make(map[string]*document.Schema),
		params:  make(map[string][]string),
		sources: []string{"test-metadata"},
	}
}

// addType registers a resolvable type, optionally generic with the given
// declared parameter names in order.
func (r *fakeResolver) addType(name string, typeParams ...string) *fakeResolver {
	r.schemas[name] = &document.Schema{Type: "object"}
	if len(typeParams) > 0 {
		r.params[name] = typeParams
	}
	return r
}

func (r *fakeResolver) Resolve(name string) (*document.Schema, bool) {
	r.mu.Lock()
	r.resolved = append(r.resolved, name)
	r.mu.Unlock()
	s, ok := r.schemas[name]
	return s, ok
}

func (r *fakeResolver) TypeParameters(name string) []string {
	return r.params[name]
}

func (r *fakeResolver) Sources() []string {
	return r.sources
}

// resolvedNames returns a copy of the Resolve call log.
func (r *fakeResolver) resolvedNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.resolved))
	copy(out, r.resolved)
	return out
}

// typeRef builds a plain (non-generic) type reference.
func typeRef(name string) apidef.TypeReference {
	return apidef.TypeReference{Name: name}
}

// genericRef builds a generic type reference with param:type argument pairs.
func genericRef(name string, args ...apidef.TypeArgument) apidef.TypeReference {
	return apidef.TypeReference{Name: name, Args: args}
}

// arg builds one type argument binding a parameter name to a plain type.
func arg(param, typeName string) apidef.TypeArgument {
	return apidef.TypeArgument{Param: param, Type: apidef.TypeReference{Name: typeName}}
}
