package routegen

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/catenary/urltools/internal/issues"
	"github.com/catenary/urltools/internal/severity"
	"github.com/catenary/urltools/urlbuilder"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates manifest entries that may not generate perfectly
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates manifest validation errors
	SeverityError = severity.SeverityError
	// SeverityCritical indicates routes that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// RouteContext identifies the route a generation issue belongs to
type RouteContext = issues.RouteContext

// DefaultFileName is the file name used for generated helpers when no
// override is configured.
const DefaultFileName = "routes_gen.go"

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "routes_gen.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateResult contains the results of generating helpers from a route manifest
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// SourcePath is the manifest path (empty when generated from memory)
	SourcePath string
	// PackageName is the Go package name used in generation
	PackageName string
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of errors
	ErrorCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// LoadTime is the time taken to load the manifest
	LoadTime time.Duration
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
	// SourceSize is the size of the manifest in bytes
	SourceSize int64
	// GeneratedRoutes is the count of route helpers generated
	GeneratedRoutes int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles code generation from route manifests
type Generator struct {
	// PackageName overrides the manifest's package name when non-empty
	PackageName string

	// FileName is the name of the generated file
	// If empty, defaults to DefaultFileName
	FileName string

	// StrictMode causes generation to fail on any issues (even warnings)
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		FileName:    DefaultFileName,
		StrictMode:  false,
		IncludeInfo: true,
	}
}

// Generate generates route helpers from a manifest file
func (g *Generator) Generate(manifestPath string) (*GenerateResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(manifestPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("routegen: failed to read manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	result, genErr := g.generate(m, filepath.Base(manifestPath))
	if result != nil {
		result.SourcePath = manifestPath
		result.LoadTime = loadTime
		result.SourceSize = int64(len(data))
	}
	return result, genErr
}

// GenerateBytes generates route helpers from manifest bytes
func (g *Generator) GenerateBytes(data []byte) (*GenerateResult, error) {
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	result, genErr := g.generate(m, "")
	if result != nil {
		result.SourceSize = int64(len(data))
	}
	return result, genErr
}

// GenerateManifest generates route helpers from an already-parsed manifest
func (g *Generator) GenerateManifest(m *Manifest) (*GenerateResult, error) {
	if m == nil {
		return nil, fmt.Errorf("routegen: manifest must not be nil")
	}
	return g.generate(m, "")
}

// generate runs validation and code generation for one manifest. The source
// label, when non-empty, is recorded in the generated file header.
func (g *Generator) generate(m *Manifest, source string) (*GenerateResult, error) {
	startTime := time.Now()

	result := &GenerateResult{
		Files:       make([]GeneratedFile, 0),
		PackageName: g.PackageName,
		Issues:      make([]GenerateIssue, 0),
	}
	run := &genRun{result: result}

	if result.PackageName == "" {
		result.PackageName = m.Package
	}
	if result.PackageName == "" {
		result.PackageName = "routes"
		run.addIssue("package", `no package name configured, defaulting to "routes"`, SeverityInfo, nil)
	}

	pkgValid := token.IsIdentifier(result.PackageName)
	if !pkgValid {
		run.addIssue("package",
			fmt.Sprintf("package name %q is not a valid Go identifier", result.PackageName),
			SeverityCritical, nil)
	}

	if len(m.Routes) == 0 {
		run.addIssue("routes", "manifest defines no routes", SeverityCritical, nil)
	}

	data := fileData{
		Source:      source,
		PackageName: result.PackageName,
	}
	seen := make(map[string]string) // exported base name -> first route name using it

	for i, rt := range m.Routes {
		rd, ok := run.buildRoute(i, rt, seen)
		if !ok {
			continue
		}
		data.NeedsTime = data.NeedsTime || rd.needsTime
		data.NeedsDecimal = data.NeedsDecimal || rd.needsDecimal
		data.Routes = append(data.Routes, rd)
		result.GeneratedRoutes++
	}

	if pkgValid && len(data.Routes) > 0 {
		content, err := executeTemplate("file.tmpl", data)
		if err != nil {
			return nil, fmt.Errorf("routegen: failed to execute template: %w", err)
		}
		fileName := g.FileName
		if fileName == "" {
			fileName = DefaultFileName
		}
		result.Files = append(result.Files, GeneratedFile{Name: fileName, Content: content})
	}

	result.GenerateTime = time.Since(startTime)
	g.updateCounts(result)
	result.Success = result.CriticalCount == 0

	// In strict mode, fail on any issues
	if g.StrictMode && (result.CriticalCount > 0 || result.ErrorCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("routegen: generation failed in strict mode: %d critical issue(s), %d error(s), %d warning(s)",
			result.CriticalCount, result.ErrorCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// updateCounts updates the issue counts in the result
func (g *Generator) updateCounts(result *GenerateResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.ErrorCount = 0
	result.CriticalCount = 0
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityError:
			result.ErrorCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}

// genRun carries the accumulating result through one generation pass
type genRun struct {
	result *GenerateResult
}

// addIssue adds a generation issue
func (run *genRun) addIssue(path, message string, sev Severity, route *RouteContext) {
	run.result.Issues = append(run.result.Issues, GenerateIssue{
		Path:     path,
		Message:  message,
		Severity: sev,
		Route:    route,
	})
}

// buildRoute validates one manifest route and assembles its template data.
// Returns false when the route has to be skipped; the reason is always
// recorded as an issue.
func (run *genRun) buildRoute(idx int, rt Route, seen map[string]string) (routeData, bool) {
	path := fmt.Sprintf("routes[%d]", idx)
	rctx := &RouteContext{Name: rt.Name, Template: rt.Template}

	if rt.Name == "" {
		run.addIssue(issues.FormatPath(path, "name"), "route name is required", SeverityCritical, rctx)
		return routeData{}, false
	}
	if rt.Template == "" {
		run.addIssue(issues.FormatPath(path, "template"), "route template is required", SeverityCritical, rctx)
		return routeData{}, false
	}
	if err := urlbuilder.ValidateTemplate(rt.Template); err != nil {
		run.addIssue(issues.FormatPath(path, "template"), err.Error(), SeverityCritical, rctx)
		return routeData{}, false
	}

	base := toExportedName(rt.Name)
	if first, dup := seen[base]; dup {
		run.addIssue(issues.FormatPath(path, "name"),
			fmt.Sprintf("route name %q generates the same helper as %q", rt.Name, first),
			SeverityCritical, rctx)
		return routeData{}, false
	}
	seen[base] = rt.Name

	// Path parameters come from the template; manifest params refine their
	// types. Lookup is case-insensitive to match build-time behavior.
	inferred := urlbuilder.PlaceholderNames(rt.Template)
	inPath := make(map[string]bool, len(inferred))
	for _, name := range inferred {
		inPath[strings.ToLower(name)] = true
	}

	paramTypes := make(map[string]string, len(rt.Params))
	for j, p := range rt.Params {
		ppath := issues.FormatPath(path, fmt.Sprintf("params[%d]", j))
		if p.Name == "" {
			run.addIssue(ppath, "parameter name is required", SeverityError, rctx)
			continue
		}
		if !inPath[strings.ToLower(p.Name)] {
			run.addIssue(ppath,
				fmt.Sprintf("declared parameter %q is not used by the template", p.Name),
				SeverityWarning, rctx)
			continue
		}
		typ, known := goType(p.Type)
		if !known {
			run.addIssue(ppath,
				fmt.Sprintf("unknown parameter type %q, using string", p.Type),
				SeverityWarning, rctx)
		}
		paramTypes[strings.ToLower(p.Name)] = typ
	}

	rd := routeData{
		FuncName:  toFuncName(rt.Name),
		ConstName: toConstName(rt.Name),
		Template:  rt.Template,
		Doc:       cleanDescription(rt.Doc),
	}

	var args []string
	usedArgs := make(map[string]string) // Go argument name -> parameter name

	addParam := func(ppath, name, typ string) bool {
		arg := toArgName(name)
		if first, taken := usedArgs[arg]; taken {
			run.addIssue(ppath,
				fmt.Sprintf("parameters %q and %q map to the same Go argument %q", first, name, arg),
				SeverityCritical, rctx)
			return false
		}
		usedArgs[arg] = name
		rd.trackImport(typ)
		args = append(args, arg+" "+typ)
		rd.Entries = append(rd.Entries, entryData{Key: strconv.Quote(name), Arg: arg})
		return true
	}

	for _, name := range inferred {
		typ := paramTypes[strings.ToLower(name)]
		if typ == "" {
			typ = "string"
		}
		if !addParam(issues.FormatPath(path, "template"), name, typ) {
			return routeData{}, false
		}
	}

	seenQuery := make(map[string]bool, len(rt.Query))
	for j, q := range rt.Query {
		qpath := issues.FormatPath(path, fmt.Sprintf("query[%d]", j))
		if q.Name == "" {
			run.addIssue(qpath, "parameter name is required", SeverityError, rctx)
			continue
		}
		folded := strings.ToLower(q.Name)
		if inPath[folded] {
			run.addIssue(qpath,
				fmt.Sprintf("query parameter %q collides with a path parameter and is dropped", q.Name),
				SeverityWarning, rctx)
			continue
		}
		if seenQuery[folded] {
			run.addIssue(qpath,
				fmt.Sprintf("duplicate query parameter %q is dropped", q.Name),
				SeverityWarning, rctx)
			continue
		}
		seenQuery[folded] = true

		typ, known := goType(q.Type)
		if !known {
			run.addIssue(qpath,
				fmt.Sprintf("unknown parameter type %q, using string", q.Type),
				SeverityWarning, rctx)
		}
		if !addParam(qpath, q.Name, typ) {
			return routeData{}, false
		}
	}

	rd.Args = strings.Join(args, ", ")
	return rd, true
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	manifestPath *string
	manifest     *Manifest

	// Configuration options
	packageName string
	fileName    string
	strictMode  bool
	includeInfo bool
}

// GenerateWithOptions generates route helpers using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := routegen.GenerateWithOptions(
//	    routegen.WithManifestPath("routes.yaml"),
//	    routegen.WithPackageName("approutes"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("routegen: invalid options: %w", err)
	}

	g := &Generator{
		PackageName: cfg.packageName,
		FileName:    cfg.fileName,
		StrictMode:  cfg.strictMode,
		IncludeInfo: cfg.includeInfo,
	}

	// Route to the appropriate generation method based on input source
	if cfg.manifestPath != nil {
		return g.Generate(*cfg.manifestPath)
	}
	if cfg.manifest != nil {
		return g.GenerateManifest(cfg.manifest)
	}

	// Should never reach here due to validation in applyOptions
	return nil, fmt.Errorf("routegen: no input source specified")
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		// Set defaults
		fileName:    DefaultFileName,
		strictMode:  false,
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	sourceCount := 0
	if cfg.manifestPath != nil {
		sourceCount++
	}
	if cfg.manifest != nil {
		sourceCount++
	}

	if sourceCount == 0 {
		return nil, fmt.Errorf("routegen: must specify an input source (use WithManifestPath or WithManifest)")
	}
	if sourceCount > 1 {
		return nil, fmt.Errorf("routegen: must specify exactly one input source")
	}

	return cfg, nil
}

// WithManifestPath specifies a manifest file path as the input source
func WithManifestPath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.manifestPath = &path
		return nil
	}
}

// WithManifest specifies an in-memory Manifest as the input source
func WithManifest(m Manifest) Option {
	return func(cfg *generateConfig) error {
		cfg.manifest = &m
		return nil
	}
}

// WithPackageName overrides the manifest's Go package name
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("routegen: package name cannot be empty")
		}
		cfg.packageName = name
		return nil
	}
}

// WithFileName specifies the name of the generated file
// Default: DefaultFileName
func WithFileName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("routegen: file name cannot be empty")
		}
		if filepath.Base(name) != name {
			return fmt.Errorf("routegen: file name %q must not contain path separators", name)
		}
		if !strings.HasSuffix(name, ".go") {
			return fmt.Errorf("routegen: file name %q must end in .go", name)
		}
		cfg.fileName = name
		return nil
	}
}

// WithStrictMode causes generation to fail on any issues (even warnings)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo determines whether informational messages are collected
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}
