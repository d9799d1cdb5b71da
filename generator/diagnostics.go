package generator

import (
	"fmt"
	"sync"

	"github.com/apiweave/docgen/internal/severity"
)

// Severity indicates the severity level of a diagnostic
type Severity = severity.Severity

const (
	// SeverityError indicates a violation that drops an operation
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a recommendation that does not prevent generation
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
	// SeverityCritical indicates conditions that abort the whole run
	SeverityCritical = severity.SeverityCritical
)

// OperationContext identifies the documented operation a diagnostic
// belongs to.
type OperationContext struct {
	// Verb is the documented HTTP verb as written in the source
	Verb string
	// Path is the documented URL template
	Path string
}

// String returns "VERB path", or empty when the context is empty.
func (c OperationContext) String() string {
	if c.Verb == "" && c.Path == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", c.Verb, c.Path)
}

// OperationDiagnostic is the outcome of one attempted operation.
// An empty error list means the operation generated successfully.
type OperationDiagnostic struct {
	// Context identifies the operation
	Context OperationContext
	// Errors are the operation-scoped errors, empty on success
	Errors []error
}

// Failed reports whether the operation was dropped from the output.
func (d OperationDiagnostic) Failed() bool {
	return len(d.Errors) > 0
}

// Diagnostics is the sole channel for partial-failure reporting: one
// document-level error list plus one entry per attempted operation, in
// input processing order.
type Diagnostics struct {
	// Documents holds generation-level errors recorded once per run
	Documents []error
	// Operations holds one entry per attempted operation, in input order
	Operations []OperationDiagnostic
}

// FailedCount returns the number of operations that failed.
func (d Diagnostics) FailedCount() int {
	var n int
	for _, op := range d.Operations {
		if op.Failed() {
			n++
		}
	}
	return n
}

// HasDocumentErrors reports whether any document-level error was recorded.
func (d Diagnostics) HasDocumentErrors() bool {
	return len(d.Documents) > 0
}

// collector accumulates diagnostics across a run. Mutations are
// serialized so operations may be processed concurrently; per-operation
// entries are written by input index to keep input order.
type collector struct {
	mu         sync.Mutex
	documents  []error
	operations []OperationDiagnostic
}

func newCollector(operationCount int) *collector {
	return &collector{
		operations: make([]OperationDiagnostic, operationCount),
	}
}

func (c *collector) recordOperation(index int, ctx OperationContext, errs []error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.operations[index] = OperationDiagnostic{Context: ctx, Errors: errs}
}

func (c *collector) recordDocument(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.documents = append(c.documents, err)
}

func (c *collector) diagnostics() Diagnostics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Diagnostics{
		Documents:  c.documents,
		Operations: c.operations,
	}
}
