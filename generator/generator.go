package generator

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/apiweave/docgen/apidef"
	"github.com/apiweave/docgen/docerrors"
	"github.com/apiweave/docgen/document"
)

// GenerationResult contains the results of one generation run: the
// assembled documents keyed by variant, plus the complete diagnostics.
// Callers always receive both; a run is never all-or-nothing except in
// the zero-candidate-operations case.
type GenerationResult struct {
	// Documents maps each variant key to its assembled document
	// (*document.OAS2Document or *document.OAS3Document). Empty when
	// the input had zero candidate operations.
	Documents map[apidef.VariantKey]any
	// Diagnostics reports every document-level error and the outcome of
	// every attempted operation, in input order.
	Diagnostics Diagnostics
	// TargetVersion is the target OAS version string
	TargetVersion string
	// OASVersion is the enumerated target OAS version
	OASVersion document.OASVersion
	// Attempted is the number of candidate operations processed
	Attempted int
	// Succeeded is the number of operations present in the documents
	Succeeded int
	// Failed is the number of operations dropped with diagnostics
	Failed int
	// Success is true when every attempted operation generated
	Success bool
}

// DefaultDocument returns the default-variant document, or nil when no
// document was produced.
func (r *GenerationResult) DefaultDocument() any {
	return r.Documents[apidef.DefaultVariant]
}

// Generator turns documented operations into API documents.
// A Generator is immutable after construction and safe to reuse across
// runs; each run's state is created fresh and discarded when the caller
// receives its result.
type Generator struct {
	cfg *generateConfig
}

// New creates a Generator from functional options.
//
// Example:
//
//	gen, err := generator.New(
//	    generator.WithVersion(document.OASVersion20),
//	    generator.WithTitle("Sample API", "2.1.0"),
//	)
func New(opts ...Option) (*Generator, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Generate is a convenience function for one-off runs. It is equivalent
// to creating a Generator with New() and calling its Generate method.
func Generate(ops []apidef.DocumentedOperation, resolver apidef.SchemaResolver, opts ...Option) (*GenerationResult, error) {
	gen, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return gen.Generate(ops, resolver)
}

// generation carries the per-run state: everything here is created fresh
// per invocation and discarded afterwards.
type generation struct {
	cfg        *generateConfig
	resolver   apidef.SchemaResolver
	registry   *schemaRegistry
	aggregator *variantAggregator
	collector  *collector
	logger     Logger
}

// Generate processes ops in input order, producing one document per
// variant plus diagnostics. Per-operation failures never abort the run;
// only resource-level conditions (nil resolver, failing filter) return a
// non-nil error.
func (g *Generator) Generate(ops []apidef.DocumentedOperation, resolver apidef.SchemaResolver) (*GenerationResult, error) {
	if resolver == nil {
		return nil, fmt.Errorf("generator: schema resolver is required")
	}

	run := &generation{
		cfg:        g.cfg,
		resolver:   resolver,
		registry:   newSchemaRegistry(resolver, newDefinitionNamer(g.cfg.genericNaming), g.cfg.version),
		aggregator: newVariantAggregator(),
		collector:  newCollector(len(ops)),
		logger:     g.cfg.logger,
	}

	result := &GenerationResult{
		TargetVersion: g.cfg.version.String(),
		OASVersion:    g.cfg.version,
		Attempted:     len(ops),
	}

	// Zero candidate operations: no document at all.
	if len(ops) == 0 {
		run.collector.recordDocument(&docerrors.NoOperationElementFoundError{})
		result.Documents = make(map[apidef.VariantKey]any)
		result.Diagnostics = run.collector.diagnostics()
		return result, nil
	}

	run.processAll(ops)

	result.Failed = run.collector.diagnostics().FailedCount()
	result.Succeeded = result.Attempted - result.Failed
	result.Success = result.Failed == 0

	if result.Failed > 0 {
		run.collector.recordDocument(&docerrors.UnableToGenerateAllOperationsError{
			Succeeded: result.Succeeded,
			Total:     result.Attempted,
		})
	}

	docs := run.assembleDocuments()
	if len(g.cfg.filters) > 0 {
		for _, key := range slices.Sorted(maps.Keys(docs)) {
			filtered, err := applyFilters(g.cfg.filters, docs[key])
			if err != nil {
				return nil, err
			}
			docs[key] = filtered
		}
	}

	result.Documents = docs
	result.Diagnostics = run.collector.diagnostics()
	return result, nil
}

// processAll runs every operation through the builder, sequentially by
// default or across a bounded worker pool when parallelism is enabled.
func (g *generation) processAll(ops []apidef.DocumentedOperation) {
	if g.cfg.parallelism <= 1 {
		for i := range ops {
			g.processOne(i, ops[i])
		}
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, g.cfg.parallelism)
	for i := range ops {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			g.processOne(idx, ops[idx])
		}(i)
	}
	wg.Wait()
}

// processOne builds one operation and records its outcome at the input
// index, keeping diagnostics in input order.
func (g *generation) processOne(index int, op apidef.DocumentedOperation) {
	ctx := OperationContext{Verb: op.Verb, Path: op.URLTemplate}

	rec, err := g.buildOperation(op)
	if err != nil {
		g.logger.Warn("operation dropped", "verb", op.Verb, "path", op.URLTemplate, "error", err)
		g.collector.recordOperation(index, ctx, []error{err})
		return
	}

	g.aggregator.add(rec)
	g.collector.recordOperation(index, ctx, nil)
	g.logger.Debug("operation built", "verb", rec.verb, "path", rec.path)
}
