// Package commands provides CLI command handlers for urltools.
package commands

import (
	"flag"
	"fmt"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/catenary/urltools/urlbuilder"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// ParseDocument decodes a YAML or JSON parameter document into an untyped
// value. JSON documents parse through the YAML decoder since YAML 1.2 is a
// superset of JSON.
func ParseDocument(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}

// ConfigFlags holds the value formatting flags shared by the build and
// flatten commands.
type ConfigFlags struct {
	Booleans    string
	Arrays      string
	Names       string
	Accessors   string
	Delimiter   string
	Capacity    int
	TimeLayout  string
	JSONMode    bool
	KeyTemplate string
}

// RegisterConfigFlags binds the shared formatting flags onto a FlagSet.
func RegisterConfigFlags(fs *flag.FlagSet, flags *ConfigFlags) {
	fs.StringVar(&flags.Booleans, "booleans", "", "boolean format: default, lowercase, numeric, onoff")
	fs.StringVar(&flags.Arrays, "arrays", "", "array format: repeat, indexed, delimited")
	fs.StringVar(&flags.Names, "names", "", "parameter name format: asis, camel, snake")
	fs.StringVar(&flags.Accessors, "accessors", "", "nested key format: dot, bracket, flatten")
	fs.StringVar(&flags.Delimiter, "delimiter", "", "element separator for delimited arrays (default \",\")")
	fs.IntVar(&flags.Capacity, "capacity", 0, "output buffer ceiling in bytes (default 4096)")
	fs.StringVar(&flags.TimeLayout, "time-layout", "", "Go time layout for time values (default RFC 3339)")
	fs.BoolVar(&flags.JSONMode, "json-mode", false, "flatten objects through their JSON encoding")
	fs.StringVar(&flags.KeyTemplate, "key-template", "", "text/template overriding parameter key composition")
}

// BuildOptions converts the flag values into urlbuilder options. Flags left
// at their zero value contribute nothing, so urlbuilder defaults apply.
func (f *ConfigFlags) BuildOptions() ([]urlbuilder.Option, error) {
	var opts []urlbuilder.Option

	if f.Booleans != "" {
		format, err := urlbuilder.ParseBooleanFormat(f.Booleans)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithBooleanFormat(format))
	}
	if f.Arrays != "" {
		format, err := urlbuilder.ParseArrayFormat(f.Arrays)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithArrayFormat(format))
	}
	if f.Names != "" {
		format, err := urlbuilder.ParseNameFormat(f.Names)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithNameFormat(format))
	}
	if f.Accessors != "" {
		format, err := urlbuilder.ParseAccessorFormat(f.Accessors)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithAccessorFormat(format))
	}
	if f.Delimiter != "" {
		runes := []rune(f.Delimiter)
		if len(runes) != 1 {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", f.Delimiter)
		}
		opts = append(opts, urlbuilder.WithDelimiter(runes[0]))
	}
	if f.Capacity > 0 {
		opts = append(opts, urlbuilder.WithBufferCapacity(f.Capacity))
	}
	if f.TimeLayout != "" {
		opts = append(opts, urlbuilder.WithTimeLayout(f.TimeLayout))
	}
	if f.JSONMode {
		opts = append(opts, urlbuilder.WithJSONFlattening(true))
	}
	if f.KeyTemplate != "" {
		opts = append(opts, urlbuilder.WithKeyNameTemplate(f.KeyTemplate))
	}

	return opts, nil
}
