// Package issues provides a unified issue type for manifest validation
// and code generation problems.
package issues

import "fmt"

// RouteContext identifies the manifest route an issue belongs to.
// Issues at the manifest level carry no context.
type RouteContext struct {
	// Name is the route name from the manifest (may be empty for unnamed routes)
	Name string
	// Template is the route's URL template
	Template string
}

// String returns a formatted string representation of the route context.
// Returns empty string if the context is empty.
func (c RouteContext) String() string {
	if c.IsEmpty() {
		return ""
	}
	if c.Name == "" {
		return fmt.Sprintf("(template: %s)", c.Template)
	}
	if c.Template == "" {
		return fmt.Sprintf("(route: %s)", c.Name)
	}
	return fmt.Sprintf("(route: %s %s)", c.Name, c.Template)
}

// IsEmpty returns true if the context has no meaningful information.
func (c RouteContext) IsEmpty() bool {
	return c.Name == "" && c.Template == ""
}
