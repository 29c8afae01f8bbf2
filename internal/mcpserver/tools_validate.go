package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/catenary/urltools/urlbuilder"
)

type validateTemplateInput struct {
	Template string `json:"template" jsonschema:"The URL template to validate"`
}

type validateTemplateOutput struct {
	Valid        bool     `json:"valid"`
	Error        string   `json:"error,omitempty"`
	Placeholders []string `json:"placeholders,omitempty"`
}

func handleValidateTemplate(_ context.Context, _ *mcp.CallToolRequest, input validateTemplateInput) (*mcp.CallToolResult, validateTemplateOutput, error) {
	// An invalid template is a result, not a tool error.
	if err := urlbuilder.ValidateTemplate(input.Template); err != nil {
		return nil, validateTemplateOutput{Valid: false, Error: err.Error()}, nil
	}
	return nil, validateTemplateOutput{
		Valid:        true,
		Placeholders: urlbuilder.PlaceholderNames(input.Template),
	}, nil
}
