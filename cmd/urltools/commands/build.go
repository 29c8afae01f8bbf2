package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/catenary/urltools/internal/cliutil"
	"github.com/catenary/urltools/urlbuilder"
)

// BuildFlags contains flags for the build command
type BuildFlags struct {
	Params     ParamList
	ParamsFile string
	Format     string
	Config     ConfigFlags
}

// ParamList collects repeatable -p key=value flags.
type ParamList []string

// String implements flag.Value.
func (p *ParamList) String() string {
	return strings.Join(*p, ",")
}

// Set implements flag.Value, rejecting values without a key=value shape.
func (p *ParamList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("parameter %q must have the form key=value", value)
	}
	*p = append(*p, value)
	return nil
}

// SetupBuildFlags creates and configures a FlagSet for the build command.
// Returns the FlagSet and a BuildFlags struct with bound flag variables.
func SetupBuildFlags() (*flag.FlagSet, *BuildFlags) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	flags := &BuildFlags{Format: FormatText}

	fs.Var(&flags.Params, "p", "parameter as key=value (repeatable)")
	fs.Var(&flags.Params, "param", "parameter as key=value (repeatable)")
	fs.StringVar(&flags.ParamsFile, "params", "", "YAML or JSON parameter document ('-' for stdin)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	RegisterConfigFlags(fs, &flags.Config)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: urltools build [flags] <template>\n\n")
		cliutil.Writef(fs.Output(), "Build a URL from a template and parameters.\n\n")
		cliutil.Writef(fs.Output(), "Placeholders like \":id\" are substituted from parameters; everything\n")
		cliutil.Writef(fs.Output(), "left over is appended as a query string.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  urltools build -p id=42 -p tab=posts /users/:id\n")
		cliutil.Writef(fs.Output(), "  urltools build --params filters.yaml /search\n")
		cliutil.Writef(fs.Output(), "  cat params.json | urltools build --params - /reports/:year\n")
		cliutil.Writef(fs.Output(), "  urltools build --names snake --arrays delimited --params filters.yaml /search\n")
		cliutil.Writef(fs.Output(), "  urltools build --format json -p id=42 /users/:id\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - -p values are strings; use --params for typed or nested values\n")
		cliutil.Writef(fs.Output(), "  - -p entries override keys from the --params document\n")
		cliutil.Writef(fs.Output(), "  - Placeholder lookup is case-insensitive\n")
	}

	return fs, flags
}

// HandleBuild executes the build command
func HandleBuild(args []string) error {
	fs, flags := SetupBuildFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("build command requires exactly one template argument")
	}

	template := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	params, err := collectParams(flags)
	if err != nil {
		return err
	}

	opts, err := flags.Config.BuildOptions()
	if err != nil {
		return err
	}

	url, err := urlbuilder.Build(template, params, opts...)
	if err != nil {
		return fmt.Errorf("building URL: %w", err)
	}

	if flags.Format == FormatText {
		fmt.Println(url)
		return nil
	}
	return OutputStructured(buildOutput{Template: template, URL: url}, flags.Format)
}

// buildOutput is the structured output document for the build command.
type buildOutput struct {
	Template string `json:"template" yaml:"template"`
	URL      string `json:"url" yaml:"url"`
}

// collectParams merges the --params document with -p overrides. Both are
// optional; with neither set the template builds against no parameters.
func collectParams(flags *BuildFlags) (any, error) {
	if flags.ParamsFile == "" && len(flags.Params) == 0 {
		return nil, nil
	}

	var doc any
	if flags.ParamsFile != "" {
		data, err := cliutil.ReadInput(flags.ParamsFile)
		if err != nil {
			return nil, err
		}
		doc, err = ParseDocument(data)
		if err != nil {
			return nil, err
		}
	}

	if len(flags.Params) == 0 {
		return doc, nil
	}

	merged := make(map[string]any, len(flags.Params))
	if doc != nil {
		m, ok := doc.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cannot combine -p with a non-mapping params document")
		}
		for k, v := range m {
			merged[k] = v
		}
	}
	for _, pair := range flags.Params {
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			return nil, fmt.Errorf("parameter %q has an empty key", pair)
		}
		merged[key] = value
	}
	return merged, nil
}
