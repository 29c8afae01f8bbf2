package urlbuilder

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/catenary/urltools/internal/naming"
)

// KeyNameContext provides property metadata for custom key name templates.
// All fields are populated before the template executes.
type KeyNameContext struct {
	// Name is the property name as found on the object, unformatted.
	Name string

	// Prefix is the composed key of the enclosing object, empty at the
	// top level.
	Prefix string

	// Depth is the nesting depth of the property, zero at the top level.
	Depth int
}

// keyTemplateFuncs returns the function map for key name templates.
// These functions are available in templates passed to WithKeyNameTemplate.
func keyTemplateFuncs() template.FuncMap {
	// Use golang.org/x/text/cases for proper title casing (strings.Title is deprecated)
	titleCaser := cases.Title(language.English)

	return template.FuncMap{
		"pascal":     naming.ToPascalCase,
		"camel":      naming.ToCamelCase,
		"snake":      naming.ToSnakeCase,
		"kebab":      naming.ToKebabCase,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"title":      titleCaser.String,
		"trimPrefix": strings.TrimPrefix,
		"trimSuffix": strings.TrimSuffix,
		"replace":    strings.ReplaceAll,
	}
}

// parseKeyNameTemplate parses and validates a key name template.
// The template is validated by executing it with a sample context.
// Returns an error if the template is syntactically invalid or fails execution.
func parseKeyNameTemplate(tmpl string) (*template.Template, error) {
	t, err := template.New("keyName").Funcs(keyTemplateFuncs()).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("urlbuilder: invalid key name template: %w", err)
	}

	ctx := KeyNameContext{
		Name:   "UserName",
		Prefix: "account",
		Depth:  1,
	}
	var buf strings.Builder
	if err := t.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("urlbuilder: key name template execution failed: %w", err)
	}

	return t, nil
}

// formatKeyName converts one property name into its key segment.
// A key name template takes priority; on execution error the configured
// name format applies instead.
func (c *config) formatKeyName(name, prefix string, depth int) string {
	if c.keyTemplate != nil {
		var buf strings.Builder
		err := c.keyTemplate.Execute(&buf, KeyNameContext{
			Name:   name,
			Prefix: prefix,
			Depth:  depth,
		})
		if err == nil {
			return buf.String()
		}
		// Fall back to the name format on template error
	}

	switch c.nameFormat {
	case NameCamel:
		return naming.LowerFirst(name)
	case NameSnake:
		return naming.ToSnakeCaseStrict(name)
	default:
		return name
	}
}
