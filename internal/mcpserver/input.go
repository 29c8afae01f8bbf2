package mcpserver

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/catenary/urltools/urlbuilder"
)

// formatOptions carries the per-call formatting overrides shared by the
// build and flatten tools. Zero values keep the server defaults.
type formatOptions struct {
	Booleans    string `json:"booleans,omitempty"     jsonschema:"Boolean rendering: default, lowercase, numeric, or onoff"`
	Arrays      string `json:"arrays,omitempty"       jsonschema:"Sequence rendering: repeat, indexed, or delimited"`
	Names       string `json:"names,omitempty"        jsonschema:"Key name rendering: asis, camel, or snake"`
	Accessors   string `json:"accessors,omitempty"    jsonschema:"Nested key composition: dot, bracket, or flatten"`
	Delimiter   string `json:"delimiter,omitempty"    jsonschema:"Element separator for delimited arrays (single character)"`
	TimeLayout  string `json:"time_layout,omitempty"  jsonschema:"Go time layout for rendering time values"`
	JSONMode    *bool  `json:"json_mode,omitempty"    jsonschema:"Flatten objects through their JSON encoding instead of direct traversal"`
	KeyTemplate string `json:"key_template,omitempty" jsonschema:"text/template expression overriding parameter key composition"`
}

// builderOptions translates the server defaults plus this call's overrides
// into urlbuilder options. A nil receiver applies the defaults only.
func (o *formatOptions) builderOptions() ([]urlbuilder.Option, error) {
	opts := []urlbuilder.Option{
		urlbuilder.WithBufferCapacity(cfg.BufferCapacity),
	}
	if cfg.TimeLayout != "" {
		opts = append(opts, urlbuilder.WithTimeLayout(cfg.TimeLayout))
	}
	if o == nil {
		return opts, nil
	}

	if o.Booleans != "" {
		format, err := urlbuilder.ParseBooleanFormat(o.Booleans)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithBooleanFormat(format))
	}
	if o.Arrays != "" {
		format, err := urlbuilder.ParseArrayFormat(o.Arrays)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithArrayFormat(format))
	}
	if o.Names != "" {
		format, err := urlbuilder.ParseNameFormat(o.Names)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithNameFormat(format))
	}
	if o.Accessors != "" {
		format, err := urlbuilder.ParseAccessorFormat(o.Accessors)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithAccessorFormat(format))
	}
	if o.Delimiter != "" {
		runes := []rune(o.Delimiter)
		if len(runes) != 1 {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", o.Delimiter)
		}
		opts = append(opts, urlbuilder.WithDelimiter(runes[0]))
	}
	if o.TimeLayout != "" {
		opts = append(opts, urlbuilder.WithTimeLayout(o.TimeLayout))
	}
	if o.JSONMode != nil {
		opts = append(opts, urlbuilder.WithJSONFlattening(*o.JSONMode))
	}
	if o.KeyTemplate != "" {
		opts = append(opts, urlbuilder.WithKeyNameTemplate(o.KeyTemplate))
	}
	return opts, nil
}

// checkParamsSize enforces the configured ceiling on params documents.
// The document arrives already decoded, so size is measured on its JSON
// re-encoding.
func checkParamsSize(params map[string]any) error {
	if len(params) == 0 {
		return nil
	}
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encoding params: %w", err)
	}
	if size := int64(len(data)); size > cfg.MaxParamsSize {
		return fmt.Errorf("params document size %d bytes exceeds maximum %d bytes; set URLTOOLS_MAX_PARAMS_SIZE to increase",
			size, cfg.MaxParamsSize)
	}
	return nil
}
