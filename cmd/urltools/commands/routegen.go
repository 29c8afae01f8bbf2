package commands

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/catenary/urltools"
	"github.com/catenary/urltools/internal/cliutil"
	"github.com/catenary/urltools/routegen"
)

// RoutegenFlags contains flags for the routegen command
type RoutegenFlags struct {
	Output      string
	PackageName string
	FileName    string
	Strict      bool
	NoInfo      bool
}

// SetupRoutegenFlags creates and configures a FlagSet for the routegen command.
// Returns the FlagSet and a RoutegenFlags struct with bound flag variables.
func SetupRoutegenFlags() (*flag.FlagSet, *RoutegenFlags) {
	fs := flag.NewFlagSet("routegen", flag.ContinueOnError)
	flags := &RoutegenFlags{}

	fs.StringVar(&flags.Output, "o", "", "output directory for the generated file (required)")
	fs.StringVar(&flags.Output, "output", "", "output directory for the generated file (required)")
	fs.StringVar(&flags.PackageName, "p", "", "Go package name (overrides the manifest's package)")
	fs.StringVar(&flags.PackageName, "package", "", "Go package name (overrides the manifest's package)")
	fs.StringVar(&flags.FileName, "file", routegen.DefaultFileName, "name of the generated file")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation issues (even warnings)")
	fs.BoolVar(&flags.NoInfo, "no-info", false, "suppress informational messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: urltools routegen [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Generate typed Go URL helper functions from a route manifest.\n\n")
		cliutil.Writef(fs.Output(), "The manifest is a YAML (or JSON) document listing named route\n")
		cliutil.Writef(fs.Output(), "templates with their parameter types. Each route becomes a\n")
		cliutil.Writef(fs.Output(), "function that builds its URL through the urlbuilder package.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  urltools routegen -o ./routes routes.yaml\n")
		cliutil.Writef(fs.Output(), "  urltools routegen -o ./internal/routes -p approutes routes.yaml\n")
		cliutil.Writef(fs.Output(), "  urltools routegen -o ./routes --file helpers_gen.go routes.yaml\n")
		cliutil.Writef(fs.Output(), "  urltools routegen -o ./routes --strict routes.yaml\n")
		cliutil.Writef(fs.Output(), "  cat routes.yaml | urltools routegen -o ./routes -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - The package name comes from the manifest unless -p is given\n")
		cliutil.Writef(fs.Output(), "  - Generated files carry a DO NOT EDIT header and are gofmt-clean\n")
		cliutil.Writef(fs.Output(), "  - Routes with unresolvable issues are skipped, not silently mangled\n")
	}

	return fs, flags
}

// HandleRoutegen executes the routegen command
func HandleRoutegen(args []string) error {
	fs, flags := SetupRoutegenFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("routegen command requires exactly one manifest path or '-' for stdin")
	}

	manifestPath := fs.Arg(0)

	if flags.Output == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use -o or --output)")
	}

	// Generate the helpers with timing
	startTime := time.Now()
	var result *routegen.GenerateResult
	var err error

	if manifestPath == cliutil.StdinPath {
		data, readErr := cliutil.ReadInput(manifestPath)
		if readErr != nil {
			return readErr
		}
		g := routegen.New()
		g.PackageName = flags.PackageName
		g.FileName = flags.FileName
		g.StrictMode = flags.Strict
		g.IncludeInfo = !flags.NoInfo
		result, err = g.GenerateBytes(data)
	} else {
		genOpts := []routegen.Option{
			routegen.WithManifestPath(manifestPath),
			routegen.WithFileName(flags.FileName),
			routegen.WithStrictMode(flags.Strict),
			routegen.WithIncludeInfo(!flags.NoInfo),
		}
		if flags.PackageName != "" {
			genOpts = append(genOpts, routegen.WithPackageName(flags.PackageName))
		}
		result, err = routegen.GenerateWithOptions(genOpts...)
	}
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("generating route helpers: %w", err)
	}

	// Print results
	fmt.Printf("URL Route Generator\n")
	fmt.Printf("===================\n\n")
	fmt.Printf("urltools version: %s\n", urltools.Version())
	fmt.Printf("Manifest: %s\n", cliutil.DisplayPath(manifestPath))
	fmt.Printf("Manifest Size: %s\n", cliutil.FormatBytes(result.SourceSize))
	fmt.Printf("Package: %s\n", result.PackageName)
	fmt.Printf("Routes: %d\n", result.GeneratedRoutes)
	fmt.Printf("Total Time: %v\n\n", totalTime)

	// Print issues
	if len(result.Issues) > 0 {
		fmt.Printf("Generation Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  %s\n", issue.String())
		}
		fmt.Println()
	}

	// Write files
	if err := result.WriteFiles(flags.Output); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}

	// Print generated files
	fmt.Printf("Generated Files (%d):\n", len(result.Files))
	for _, file := range result.Files {
		fmt.Printf("  - %s/%s (%d bytes)\n", flags.Output, file.Name, len(file.Content))
	}
	fmt.Println()

	// Print summary
	if result.Success {
		fmt.Printf("✓ Generation successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			fmt.Printf(" (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		fmt.Println()
	} else {
		fmt.Printf("✗ Generation completed with %d critical issue(s)", result.CriticalCount)
		if result.WarningCount > 0 {
			fmt.Printf(", %d warning(s)", result.WarningCount)
		}
		fmt.Println()
		return fmt.Errorf("generation failed with %d critical issue(s)", result.CriticalCount)
	}

	return nil
}
