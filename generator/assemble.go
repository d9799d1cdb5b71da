package generator

import (
	"github.com/apiweave/docgen/apidef"
	"github.com/apiweave/docgen/document"
)

// defaultInfo is used when the caller injects no info metadata.
func defaultInfo() *document.Info {
	return &document.Info{Title: "Generated API", Version: "1.0.0"}
}

// assembleDocuments wraps each variant's path tree into a complete
// document envelope for the configured target version.
func (g *generation) assembleDocuments() map[apidef.VariantKey]any {
	info := g.cfg.info
	if info == nil {
		info = defaultInfo()
	}

	defs := g.registry.definitions()
	docs := make(map[apidef.VariantKey]any)
	for key, paths := range g.aggregator.trees() {
		if g.cfg.version.IsOAS2() {
			docs[key] = g.assembleOAS2(info, paths, defs)
		} else {
			docs[key] = g.assembleOAS3(info, paths, defs)
		}
	}
	return docs
}

func (g *generation) assembleOAS2(info *document.Info, paths document.Paths, defs map[string]*document.Schema) *document.OAS2Document {
	return &document.OAS2Document{
		Swagger:     "2.0",
		OASVersion:  g.cfg.version,
		Info:        info,
		Host:        g.cfg.host,
		BasePath:    g.cfg.basePath,
		Schemes:     g.cfg.schemes,
		Paths:       paths,
		Definitions: defs,
	}
}

func (g *generation) assembleOAS3(info *document.Info, paths document.Paths, defs map[string]*document.Schema) *document.OAS3Document {
	var components *document.Components
	if len(defs) > 0 {
		components = &document.Components{Schemas: defs}
	}
	return &document.OAS3Document{
		OpenAPI:    g.cfg.version.String(),
		OASVersion: g.cfg.version,
		Info:       info,
		Servers:    g.cfg.servers,
		Paths:      paths,
		Components: components,
	}
}
