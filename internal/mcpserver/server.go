// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes urltools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/catenary/urltools"
)

const serverInstructions = `urltools MCP server — builds, flattens, and validates parameterized URLs.

Configuration: All defaults are configurable via URLTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- URLTOOLS_BUFFER_CAPACITY (default: 4096) — byte ceiling for assembled URLs; builds that exceed it fail
- URLTOOLS_TIME_LAYOUT (default: RFC 3339) — Go time layout for rendering time values
- URLTOOLS_MAX_PARAMS_SIZE (default: 1048576) — maximum serialized size of a params document in bytes

Formatting: the build and flatten tools accept per-call options (booleans, arrays, names, accessors, delimiter, time_layout, json_mode, key_template) controlling how values render and how nested keys compose.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "urltools", Version: urltools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "build",
		Description: "Build a URL from a template and a parameter object. Placeholders like :id are substituted from matching parameters (case-insensitive); leftover parameters become sorted query parameters. Values are not percent-encoded; encode parameter values yourself when they need it. Nested objects flatten into accessor keys (parent.child by default). Pass options to control boolean, array, and name rendering.",
	}, handleBuild)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "flatten",
		Description: "Flatten a parameter object into the key/value pairs a build would produce, without assembling a URL. Useful for inspecting how nested documents and formatting options interact. Values come back rendered; sequence parameters yield one value per element.",
	}, handleFlatten)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_template",
		Description: "Validate a URL template. Checks that the template is a well-formed URI reference and reports the placeholder names it declares, in order of first appearance.",
	}, handleValidateTemplate)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
