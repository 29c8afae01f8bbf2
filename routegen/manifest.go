package routegen

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// Manifest is the root of a route manifest document.
//
// A manifest is YAML (JSON parses too) and lists named URL templates:
//
//	package: approutes
//	routes:
//	  - name: userProfile
//	    template: /users/:id/profile
//	    doc: Links to a user's profile page.
//	    params:
//	      - name: id
//	        type: int64
//	    query:
//	      - name: tab
type Manifest struct {
	// Package is the Go package name for generated code.
	// Defaults to "routes" when empty.
	Package string `yaml:"package"`
	// Routes lists the URL templates to generate helpers for.
	Routes []Route `yaml:"routes"`
}

// Route describes one URL template and its parameters.
type Route struct {
	// Name is the base name for the generated helper. Required, and must be
	// unique within the manifest after conversion to a Go identifier.
	Name string `yaml:"name"`
	// Template is the URL template, with ":name" marking each path parameter.
	Template string `yaml:"template"`
	// Doc is an optional sentence carried into the helper's doc comment.
	Doc string `yaml:"doc"`
	// Params refines the path parameters found in Template. Parameters the
	// template uses but Params does not mention default to type "string".
	Params []Param `yaml:"params"`
	// Query lists parameters appended to the query string.
	Query []Param `yaml:"query"`
}

// Param describes one route parameter.
type Param struct {
	// Name is the parameter name as it appears in the template or query.
	Name string `yaml:"name"`
	// Type selects the Go type of the helper argument: "string", "int",
	// "int64", "float64", "bool", "time", or "decimal".
	// Defaults to "string".
	Type string `yaml:"type"`
	// Doc is an optional description (currently informational only).
	Doc string `yaml:"doc"`
}

// ParseManifest parses a route manifest from a byte slice.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("routegen: failed to parse manifest: %w", err)
	}
	return &m, nil
}

// ParseManifestFile reads and parses a route manifest from disk.
func ParseManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routegen: failed to read manifest: %w", err)
	}
	return ParseManifest(data)
}
