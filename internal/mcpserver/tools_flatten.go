package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/catenary/urltools/urlbuilder"
)

type flattenInput struct {
	Params  map[string]any `json:"params"            jsonschema:"Parameter object to flatten"`
	Options *formatOptions `json:"options,omitempty" jsonschema:"Formatting overrides for this call"`
}

type flatPair struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

type flattenOutput struct {
	Pairs []flatPair `json:"pairs,omitempty"`
	Count int        `json:"count"`
}

func handleFlatten(_ context.Context, _ *mcp.CallToolRequest, input flattenInput) (*mcp.CallToolResult, flattenOutput, error) {
	if err := checkParamsSize(input.Params); err != nil {
		return errResult(err), flattenOutput{}, nil
	}

	opts, err := input.Options.builderOptions()
	if err != nil {
		return errResult(err), flattenOutput{}, nil
	}
	b, err := urlbuilder.New(opts...)
	if err != nil {
		return errResult(err), flattenOutput{}, nil
	}

	var params any
	if input.Params != nil {
		params = input.Params
	}
	pm := b.Flatten(params)

	output := flattenOutput{
		Pairs: makeSlice[flatPair](pm.Len()),
		Count: pm.Len(),
	}
	for _, key := range pm.Keys() {
		value, _ := pm.Get(key)
		output.Pairs = append(output.Pairs, flatPair{Key: key, Values: b.RenderValues(value)})
	}
	return nil, output, nil
}
