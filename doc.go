// Package urltools provides tools for building URLs from path templates and
// structured parameter values.
//
// urltools turns a template like "/users/:id" plus a parameter container (a
// map, a struct, or any nested document) into a finished URL with placeholders
// substituted and leftover parameters appended as a query string. Values pass
// through as rendered; callers that need percent-encoding apply it to the
// parameter values themselves.
//
// # Overview
//
// The module consists of three primary packages:
//
//   - urlbuilder: Flatten parameter containers, format values, and assemble URLs
//   - urlerrors: Shared error types and sentinels for matching with errors.Is
//   - routegen: Generate typed Go URL helper functions from a route manifest
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/catenary/urltools
//
// # Quick Start
//
// Build a URL from a template and a parameter map:
//
//	import "github.com/catenary/urltools/urlbuilder"
//
//	url, err := urlbuilder.Build("/users/:id", map[string]any{
//		"id":  42,
//		"tab": "posts",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(url) // /users/42?tab=posts
//
// Reuse a configured Builder across many builds:
//
//	b, err := urlbuilder.New(
//		urlbuilder.WithArrayFormat(urlbuilder.ArrayDelimited),
//		urlbuilder.WithNameFormat(urlbuilder.NameSnake),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	url, err := b.Build("/search", SearchFilters{PageSize: 50, Tags: []string{"go", "web"}})
//
// # URL Builder Package
//
// The urlbuilder package is the core of the module. It flattens arbitrarily
// nested parameter containers into key/value pairs, renders scalar values
// (booleans, numbers, times, decimals) under configurable formats, and
// assembles the final URL inside a capacity-bounded buffer.
//
// Key features:
//   - Placeholder substitution (":name" segments, case-insensitive lookup)
//   - Struct, map, and sequence flattening with JSON-tag awareness
//   - Optional flattening through the JSON encoding (WithJSONFlattening)
//   - Boolean, array, name, and accessor output formats
//   - Hard output-size ceiling with overflow reported as an error
//
// Example:
//
//	pm, err := urlbuilder.Flatten(filters, urlbuilder.WithNameFormat(urlbuilder.NameSnake))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, key := range pm.Keys() {
//		value, _ := pm.Get(key)
//		fmt.Printf("%s = %v\n", key, value)
//	}
//
// See the urlbuilder package documentation for more details.
//
// # Route Generator Package
//
// The routegen package generates typed Go helper functions from a YAML route
// manifest, so route templates live in one reviewed file instead of scattered
// string literals:
//
//	package: approutes
//	routes:
//	  - name: userProfile
//	    template: /users/:id/profile
//	    params:
//	      - name: id
//	        type: int64
//
// generates:
//
//	func UserProfileURL(id int64) (string, error) {
//		return urlbuilder.Build(UserProfileTemplate, map[string]any{
//			"id": id,
//		})
//	}
//
// See the routegen package documentation for more details.
//
// # Error Handling
//
// All failures surface as typed errors in the urlerrors package with matching
// sentinels:
//
//	url, err := urlbuilder.Build(template, params)
//	switch {
//	case errors.Is(err, urlerrors.ErrInvalidTemplate):
//		// the template is not a well-formed URI reference
//	case errors.Is(err, urlerrors.ErrBufferOverflow):
//		// the URL exceeded the configured capacity
//	}
//
// Overflow is a hard ceiling, not a truncation point: a build that would
// exceed the configured capacity fails and produces no output.
//
// # Performance Tips
//
// For best performance:
//
//   - Reuse a Builder instead of calling the package-level Build with options
//     on every call; option application allocates
//   - Size the buffer capacity to your longest expected URL
//     (WithBufferCapacity); the default is 4 KiB
//   - Prefer the direct reflection walk over WithJSONFlattening when the JSON
//     shape of a type matches its Go shape; JSON mode marshals first
//   - Builders are safe for concurrent use; the working buffers behind them
//     are pooled
//
// # Command-Line Interface
//
// In addition to the library packages, urltools provides a command-line
// interface:
//
//	# Build a URL from a template and parameters
//	urltools build -p id=42 -p tab=posts /users/:id
//
//	# Flatten a parameter document into query parameters
//	urltools flatten --format json params.yaml
//
//	# Generate typed URL helpers from a route manifest
//	urltools routegen -o ./approutes routes.yaml
//
//	# Run the MCP server on stdio
//	urltools mcp
//
// Install the CLI:
//
//	go install github.com/catenary/urltools/cmd/urltools@latest
//
// # MCP Server
//
// The mcp subcommand runs a Model Context Protocol server on stdio exposing
// build, flatten, and validate_template tools, so agent runtimes can construct
// URLs without string concatenation. Configuration is taken from
// URLTOOLS_BUFFER_CAPACITY and URLTOOLS_TIME_LAYOUT environment variables.
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/catenary/urltools
//   - Go Package Documentation: https://pkg.go.dev/github.com/catenary/urltools
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package urltools
