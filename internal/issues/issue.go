// Package issues provides a unified issue type for manifest validation
// and code generation problems.
package issues

import (
	"fmt"

	"github.com/catenary/urltools/internal/severity"
)

// Issue represents a single problem found while loading a route manifest
// or generating code from it.
type Issue struct {
	// Path is the manifest path to the problematic entry (e.g., "routes[2].template")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific field name that has the issue
	Field string
	// Value is the problematic value (optional)
	Value any
	// Route identifies the route the issue belongs to. Nil when the issue
	// is not tied to a single route.
	Route *RouteContext
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	pathWithContext := i.Path
	if i.Route != nil && !i.Route.IsEmpty() {
		pathWithContext = fmt.Sprintf("%s %s", i.Path, i.Route.String())
	}

	return fmt.Sprintf("%s %s: %s", symbol, pathWithContext, i.Message)
}
