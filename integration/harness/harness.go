//go:build integration

// Package harness provides the scenario framework for urltools integration
// tests. Scenarios are declarative YAML files pairing parameter documents
// with the URLs, flattened pairs, or generated code they must produce.
package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catenary/urltools/routegen"
	"github.com/catenary/urltools/urlbuilder"
)

// Scenario represents a complete integration test scenario.
type Scenario struct {
	// Name is a short, descriptive name for the scenario
	Name string `yaml:"name"`
	// Description provides additional context about what the scenario tests
	Description string `yaml:"description,omitempty"`
	// Cases lists build and flatten cases to run
	Cases []BuildCase `yaml:"cases,omitempty"`
	// Generate describes a route generation case
	Generate *GenerateCase `yaml:"generate,omitempty"`
	// Skip provides a reason to skip this scenario (if set, scenario is skipped)
	Skip string `yaml:"skip,omitempty"`

	// filePath is the path to the scenario file (set by the loader)
	filePath string
}

// FilePath returns the path of the file the scenario was loaded from.
func (s *Scenario) FilePath() string {
	return s.filePath
}

// BuildCase drives one Build call, optionally checking the flattened pairs
// on the way.
type BuildCase struct {
	// Name identifies the case within the scenario
	Name string `yaml:"name"`
	// Template is the URL template to build against
	Template string `yaml:"template,omitempty"`
	// Params is the parameter document
	Params map[string]any `yaml:"params,omitempty"`
	// Options selects formatting options by name
	Options FormatOptions `yaml:"options,omitempty"`
	// Want is the exact URL Build must produce
	Want string `yaml:"want,omitempty"`
	// WantErr is a substring the build error must contain
	WantErr string `yaml:"want-err,omitempty"`
	// WantPairs pins the flattened pairs, in order, with rendered values
	WantPairs []Pair `yaml:"want-pairs,omitempty"`
}

// Pair is one expected flattened key with its rendered values.
type Pair struct {
	Key    string   `yaml:"key"`
	Values []string `yaml:"values"`
}

// FormatOptions selects urlbuilder options by name, the way CLI flags do.
type FormatOptions struct {
	Booleans    string `yaml:"booleans,omitempty"`
	Arrays      string `yaml:"arrays,omitempty"`
	Names       string `yaml:"names,omitempty"`
	Accessors   string `yaml:"accessors,omitempty"`
	Delimiter   string `yaml:"delimiter,omitempty"`
	Capacity    int    `yaml:"capacity,omitempty"`
	TimeLayout  string `yaml:"time-layout,omitempty"`
	JSONMode    bool   `yaml:"json-mode,omitempty"`
	KeyTemplate string `yaml:"key-template,omitempty"`
}

// GenerateCase drives one routegen run over an inline manifest.
type GenerateCase struct {
	// Manifest is the YAML manifest text
	Manifest string `yaml:"manifest"`
	// PackageName overrides the manifest's package when set
	PackageName string `yaml:"package-name,omitempty"`
	// Strict enables strict mode
	Strict bool `yaml:"strict,omitempty"`
	// WantContains are substrings the generated source must contain
	WantContains []string `yaml:"want-contains,omitempty"`
	// WantErr is a substring the generation error must contain
	WantErr string `yaml:"want-err,omitempty"`
	// WantRoutes is the expected generated route count
	WantRoutes int `yaml:"want-routes,omitempty"`
	// WantWarnings pins the warning count when set
	WantWarnings *int `yaml:"want-warnings,omitempty"`
	// WantCriticals pins the critical count when set
	WantCriticals *int `yaml:"want-criticals,omitempty"`
}

// Run executes every case of the scenario as subtests.
func Run(t *testing.T, sc *Scenario) {
	t.Helper()

	if sc.Skip != "" {
		t.Skipf("scenario skipped: %s", sc.Skip)
	}

	for _, c := range sc.Cases {
		t.Run(c.Name, func(t *testing.T) {
			runBuildCase(t, c)
		})
	}

	if sc.Generate != nil {
		t.Run("generate", func(t *testing.T) {
			runGenerateCase(t, *sc.Generate)
		})
	}
}

// runBuildCase flattens and builds per the case's expectations.
func runBuildCase(t *testing.T, c BuildCase) {
	t.Helper()

	opts, err := c.Options.builderOptions()
	require.NoError(t, err, "case %q has invalid options", c.Name)

	// A typed nil map would dodge the builder's nil handling.
	var params any
	if c.Params != nil {
		params = c.Params
	}

	if len(c.WantPairs) > 0 {
		b, err := urlbuilder.New(opts...)
		require.NoError(t, err)

		pm := b.Flatten(params)
		keys := pm.Keys()
		require.Len(t, keys, len(c.WantPairs), "flattened key count")
		for i, want := range c.WantPairs {
			assert.Equal(t, want.Key, keys[i], "key %d", i)
			value, ok := pm.Get(want.Key)
			require.True(t, ok, "key %q missing", want.Key)
			assert.Equal(t, want.Values, b.RenderValues(value), "values for %q", want.Key)
		}
	}

	if c.Template == "" {
		return
	}

	u, err := urlbuilder.Build(c.Template, params, opts...)
	if c.WantErr != "" {
		require.Error(t, err)
		assert.Contains(t, err.Error(), c.WantErr)
		return
	}
	require.NoError(t, err)
	assert.Equal(t, c.Want, u)
}

// runGenerateCase generates from the inline manifest and checks the result.
func runGenerateCase(t *testing.T, c GenerateCase) {
	t.Helper()

	g := routegen.New()
	if c.PackageName != "" {
		g.PackageName = c.PackageName
	}
	g.StrictMode = c.Strict

	result, err := g.GenerateBytes([]byte(c.Manifest))
	if c.WantErr != "" {
		require.Error(t, err)
		assert.Contains(t, err.Error(), c.WantErr)
		return
	}
	require.NoError(t, err)

	assert.Equal(t, c.WantRoutes, result.GeneratedRoutes, "generated route count")
	if c.WantWarnings != nil {
		assert.Equal(t, *c.WantWarnings, result.WarningCount, "warning count")
	}
	if c.WantCriticals != nil {
		assert.Equal(t, *c.WantCriticals, result.CriticalCount, "critical count")
	}

	var source strings.Builder
	for _, f := range result.Files {
		source.Write(f.Content)
	}
	for _, want := range c.WantContains {
		assert.Contains(t, source.String(), want)
	}
}

// builderOptions translates the named options into urlbuilder options.
func (o FormatOptions) builderOptions() ([]urlbuilder.Option, error) {
	var opts []urlbuilder.Option

	if o.Booleans != "" {
		f, err := urlbuilder.ParseBooleanFormat(o.Booleans)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithBooleanFormat(f))
	}
	if o.Arrays != "" {
		f, err := urlbuilder.ParseArrayFormat(o.Arrays)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithArrayFormat(f))
	}
	if o.Names != "" {
		f, err := urlbuilder.ParseNameFormat(o.Names)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithNameFormat(f))
	}
	if o.Accessors != "" {
		f, err := urlbuilder.ParseAccessorFormat(o.Accessors)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithAccessorFormat(f))
	}
	if o.Delimiter != "" {
		runes := []rune(o.Delimiter)
		if len(runes) != 1 {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", o.Delimiter)
		}
		opts = append(opts, urlbuilder.WithDelimiter(runes[0]))
	}
	if o.Capacity > 0 {
		opts = append(opts, urlbuilder.WithBufferCapacity(o.Capacity))
	}
	if o.TimeLayout != "" {
		opts = append(opts, urlbuilder.WithTimeLayout(o.TimeLayout))
	}
	if o.JSONMode {
		opts = append(opts, urlbuilder.WithJSONFlattening(true))
	}
	if o.KeyTemplate != "" {
		opts = append(opts, urlbuilder.WithKeyNameTemplate(o.KeyTemplate))
	}

	return opts, nil
}
