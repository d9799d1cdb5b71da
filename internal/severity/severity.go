// Package severity provides severity level constants for diagnostics
// reported by the generator package.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of a diagnostic produced during
// document generation.
type Severity int

const (
	// SeverityError indicates a violation that drops an operation from the
	// generated documents.
	SeverityError Severity = iota

	// SeverityWarning indicates a best-practice violation or recommendation
	// that does not prevent generation.
	SeverityWarning

	// SeverityInfo indicates informational messages about generation choices.
	SeverityInfo

	// SeverityCritical indicates conditions that abort the whole run.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
