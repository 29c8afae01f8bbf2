// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// NewSimpleManifest creates a minimal route manifest document for testing.
// Contains a single route with one path parameter.
//
// The document is an untyped map so that tests in any package can marshal
// it to YAML or JSON without importing routegen.
func NewSimpleManifest() map[string]any {
	return map[string]any{
		"package": "testroutes",
		"routes": []any{
			map[string]any{
				"name":     "userProfile",
				"template": "/users/:id/profile",
			},
		},
	}
}

// NewDetailedManifest creates a route manifest document with common features
// for testing. Includes typed path parameters, query parameters, and docs.
func NewDetailedManifest() map[string]any {
	return map[string]any{
		"package": "testroutes",
		"routes": []any{
			map[string]any{
				"name":     "userProfile",
				"template": "/users/:id/profile",
				"doc":      "Links to a user's profile page.",
				"params": []any{
					map[string]any{"name": "id", "type": "int64", "doc": "Numeric user identifier."},
				},
				"query": []any{
					map[string]any{"name": "tab", "type": "string"},
				},
			},
			map[string]any{
				"name":     "search",
				"template": "/search",
				"query": []any{
					map[string]any{"name": "q", "type": "string"},
					map[string]any{"name": "page", "type": "int"},
					map[string]any{"name": "exact", "type": "bool"},
				},
			},
		},
	}
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
