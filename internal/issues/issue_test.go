package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/catenary/urltools/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string // Strings that must be present in output
		notContains []string // Strings that must NOT be present in output
	}{
		{
			name: "error severity with basic fields",
			issue: Issue{
				Path:     "routes[0].template",
				Message:  "not a well-formed URI reference",
				Severity: severity.SeverityError,
			},
			contains: []string{
				"✗",
				"routes[0].template",
				"not a well-formed URI reference",
			},
		},
		{
			name: "warning severity",
			issue: Issue{
				Path:     "routes[3].params[1]",
				Message:  "declared parameter is not used by the template",
				Severity: severity.SeverityWarning,
			},
			contains:    []string{"⚠", "routes[3].params[1]"},
			notContains: []string{"✗", "ℹ"},
		},
		{
			name: "info severity",
			issue: Issue{
				Path:     "package",
				Message:  `defaulting package name to "routes"`,
				Severity: severity.SeverityInfo,
			},
			contains: []string{"ℹ", "package"},
		},
		{
			name: "critical severity shares the error symbol",
			issue: Issue{
				Path:     "routes[7]",
				Message:  "route cannot be generated",
				Severity: severity.SeverityCritical,
			},
			contains: []string{"✗"},
		},
		{
			name: "unknown severity falls back to question mark",
			issue: Issue{
				Path:     "routes[1]",
				Message:  "odd",
				Severity: severity.Severity(99),
			},
			contains: []string{"?"},
		},
		{
			name: "route context is appended after the path",
			issue: Issue{
				Path:     "routes[2].name",
				Message:  "duplicate route name",
				Severity: severity.SeverityError,
				Route:    &RouteContext{Name: "userProfile", Template: "/users/:id"},
			},
			contains: []string{
				"routes[2].name (route: userProfile /users/:id):",
				"duplicate route name",
			},
		},
		{
			name: "empty route context is omitted",
			issue: Issue{
				Path:     "routes[2].name",
				Message:  "duplicate route name",
				Severity: severity.SeverityError,
				Route:    &RouteContext{},
			},
			notContains: []string{"(", ")"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.issue.String()
			for _, want := range tt.contains {
				assert.Contains(t, result, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, result, unwanted)
			}
		})
	}
}

func TestRouteContextString(t *testing.T) {
	tests := []struct {
		name string
		ctx  RouteContext
		want string
	}{
		{"empty", RouteContext{}, ""},
		{"name only", RouteContext{Name: "search"}, "(route: search)"},
		{"template only", RouteContext{Template: "/search"}, "(template: /search)"},
		{"name and template", RouteContext{Name: "search", Template: "/search"}, "(route: search /search)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ctx.String())
			assert.Equal(t, tt.want == "", tt.ctx.IsEmpty())
		})
	}
}
