// Package severity provides severity level constants and utilities
// for issues reported during route manifest loading and code generation.
//
// All four severity levels are exported by each public package that uses them:
//   - SeverityInfo: Informational messages about choices made
//   - SeverityWarning: Suspicious manifest entries that generation can work around
//   - SeverityError: Manifest violations that make a route unusable
//   - SeverityCritical: Routes that cannot be generated at all
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue during manifest
// validation or code generation.
type Severity int

const (
	// SeverityError indicates a manifest violation that makes a route invalid,
	// such as a malformed template or a duplicate route name.
	SeverityError Severity = iota

	// SeverityWarning indicates suspicious entries that don't prevent generation
	// but should be addressed, such as a declared parameter the template never uses.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates routes that cannot be generated without
	// dropping them from the output.
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
