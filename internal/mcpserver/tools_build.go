package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/catenary/urltools/urlbuilder"
)

type buildInput struct {
	Template string         `json:"template"          jsonschema:"The URL template with :name placeholders"`
	Params   map[string]any `json:"params,omitempty"  jsonschema:"Parameter object; nested objects flatten into accessor keys"`
	Options  *formatOptions `json:"options,omitempty" jsonschema:"Formatting overrides for this call"`
}

type buildOutput struct {
	URL string `json:"url"`
}

func handleBuild(_ context.Context, _ *mcp.CallToolRequest, input buildInput) (*mcp.CallToolResult, buildOutput, error) {
	if input.Template == "" {
		return errResult(fmt.Errorf("template is required")), buildOutput{}, nil
	}
	if err := checkParamsSize(input.Params); err != nil {
		return errResult(err), buildOutput{}, nil
	}

	opts, err := input.Options.builderOptions()
	if err != nil {
		return errResult(err), buildOutput{}, nil
	}

	// A typed nil map would dodge the builder's nil handling.
	var params any
	if input.Params != nil {
		params = input.Params
	}

	url, err := urlbuilder.Build(input.Template, params, opts...)
	if err != nil {
		return errResult(err), buildOutput{}, nil
	}
	return nil, buildOutput{URL: url}, nil
}
