package generator

import (
	"sync"

	"github.com/apiweave/docgen/apidef"
	"github.com/apiweave/docgen/document"
)

// variantAggregator groups successfully built operation records into one
// path/operation tree per variant key. The default (empty) key receives
// every operation so at least one complete document always exists.
// Mutations are serialized so operations may be processed concurrently.
type variantAggregator struct {
	mu      sync.Mutex
	buckets map[apidef.VariantKey]document.Paths
}

func newVariantAggregator() *variantAggregator {
	return &variantAggregator{
		buckets: map[apidef.VariantKey]document.Paths{
			apidef.DefaultVariant: make(document.Paths),
		},
	}
}

// add merges a record into the default variant and, when the record
// declares discriminator tags, into the variant those tags key. Within
// one variant a (verb, path) pair resolves to exactly one operation
// entry: a later record overwrites an earlier one's slot, but never
// displaces a different verb at the same path.
func (a *variantAggregator) add(rec *operationRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.addToBucket(apidef.DefaultVariant, rec)
	if key := apidef.MakeVariantKey(rec.variants); !key.IsDefault() {
		a.addToBucket(key, rec)
	}
}

func (a *variantAggregator) addToBucket(key apidef.VariantKey, rec *operationRecord) {
	paths, ok := a.buckets[key]
	if !ok {
		paths = make(document.Paths)
		a.buckets[key] = paths
	}
	item, ok := paths[rec.path]
	if !ok {
		item = &document.PathItem{}
		paths[rec.path] = item
	}
	document.SetOperation(item, rec.verb, rec.op)
}

// trees returns the per-variant path trees.
func (a *variantAggregator) trees() map[apidef.VariantKey]document.Paths {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buckets
}
