package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/catenary/urltools/internal/cliutil"
	"github.com/catenary/urltools/urlbuilder"
)

// FlattenFlags contains flags for the flatten command
type FlattenFlags struct {
	Format string
	Config ConfigFlags
}

// SetupFlattenFlags creates and configures a FlagSet for the flatten command.
// Returns the FlagSet and a FlattenFlags struct with bound flag variables.
func SetupFlattenFlags() (*flag.FlagSet, *FlattenFlags) {
	fs := flag.NewFlagSet("flatten", flag.ContinueOnError)
	flags := &FlattenFlags{Format: FormatText}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	RegisterConfigFlags(fs, &flags.Config)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: urltools flatten [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Flatten a YAML or JSON parameter document into query parameters.\n\n")
		cliutil.Writef(fs.Output(), "Shows the key/value pairs a build would produce, without assembling\n")
		cliutil.Writef(fs.Output(), "a URL. Useful for inspecting how nested documents and formatting\n")
		cliutil.Writef(fs.Output(), "options interact.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  urltools flatten params.yaml\n")
		cliutil.Writef(fs.Output(), "  urltools flatten --format json params.yaml\n")
		cliutil.Writef(fs.Output(), "  urltools flatten --accessors bracket --names snake params.yaml\n")
		cliutil.Writef(fs.Output(), "  cat params.json | urltools flatten -\n")
	}

	return fs, flags
}

// FlatPair is one flattened parameter with its rendered values. Sequence
// values render one element per entry; scalars render a single element.
type FlatPair struct {
	Key    string   `json:"key" yaml:"key"`
	Values []string `json:"values" yaml:"values"`
}

// HandleFlatten executes the flatten command
func HandleFlatten(args []string) error {
	fs, flags := SetupFlattenFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("flatten command requires exactly one document path or '-' for stdin")
	}

	docPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	data, err := cliutil.ReadInput(docPath)
	if err != nil {
		return err
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return err
	}

	opts, err := flags.Config.BuildOptions()
	if err != nil {
		return err
	}

	b, err := urlbuilder.New(opts...)
	if err != nil {
		return fmt.Errorf("configuring builder: %w", err)
	}

	pm := b.Flatten(doc)

	pairs := make([]FlatPair, 0, pm.Len())
	for _, key := range pm.Keys() {
		value, _ := pm.Get(key)
		pairs = append(pairs, FlatPair{Key: key, Values: b.RenderValues(value)})
	}

	if flags.Format == FormatText {
		for _, pair := range pairs {
			for _, v := range pair.Values {
				fmt.Printf("%s=%s\n", pair.Key, v)
			}
		}
		return nil
	}
	return OutputStructured(pairs, flags.Format)
}
