package generator

import (
	"sync"

	"github.com/apiweave/docgen/apidef"
	"github.com/apiweave/docgen/docerrors"
	"github.com/apiweave/docgen/document"
)

const (
	oas2RefPrefix = "#/definitions/"
	oas3RefPrefix = "#/components/schemas/"
)

// schemaRegistry resolves type references through the injected
// SchemaResolver and accumulates the resolved schemas as reusable
// definitions. Mutations are serialized so operations may be processed
// concurrently.
type schemaRegistry struct {
	mu       sync.Mutex
	resolver apidef.SchemaResolver
	namer    *definitionNamer
	version  document.OASVersion
	defs     map[string]*document.Schema
}

func newSchemaRegistry(resolver apidef.SchemaResolver, namer *definitionNamer, version document.OASVersion) *schemaRegistry {
	return &schemaRegistry{
		resolver: resolver,
		namer:    namer,
		version:  version,
		defs:     make(map[string]*document.Schema),
	}
}

// refPrefix returns the definition reference prefix for the target version.
func (r *schemaRegistry) refPrefix() string {
	if r.version.IsOAS2() {
		return oas2RefPrefix
	}
	return oas3RefPrefix
}

// resolve resolves ref and every argument reference it carries,
// registers the resolved schemas as definitions, and returns a $ref
// schema pointing at ref's definition. The reference must already have
// passed generic validation.
func (r *schemaRegistry) resolve(ref apidef.TypeReference) (*document.Schema, error) {
	schema, ok := r.resolver.Resolve(ref.Name)
	if !ok {
		return nil, &docerrors.TypeNotFoundError{
			Type:    ref.String(),
			Sources: r.resolver.Sources(),
		}
	}

	// Argument types become definitions of their own.
	for _, arg := range ref.Args {
		if _, err := r.resolve(arg.Type); err != nil {
			return nil, err
		}
	}

	name := r.namer.DefinitionName(ref)
	r.mu.Lock()
	r.defs[name] = schema
	r.mu.Unlock()

	return document.RefSchema(r.refPrefix() + name), nil
}

// definitions returns a copy of the accumulated definitions map, or nil
// when nothing was registered.
func (r *schemaRegistry) definitions() map[string]*document.Schema {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.defs) == 0 {
		return nil
	}
	out := make(map[string]*document.Schema, len(r.defs))
	for k, v := range r.defs {
		out[k] = v
	}
	return out
}
