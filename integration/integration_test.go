//go:build integration

// Package integration provides integration tests for the urltools pipeline.
// These tests exercise flattening, building, and route generation end to
// end using declarative YAML scenarios.
//
// Run with: go test -tags=integration ./integration/... -v
package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catenary/urltools/integration/harness"
)

// TestScenarios runs every scenario file under scenarios/.
func TestScenarios(t *testing.T) {
	scenarios, err := harness.LoadScenarios("scenarios")
	require.NoError(t, err, "failed to load scenarios")

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			if sc.Description != "" {
				t.Logf("%s (%s)", sc.Description, sc.FilePath())
			}
			harness.Run(t, sc)
		})
	}
}
