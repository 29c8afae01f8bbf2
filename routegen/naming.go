// This file implements name conversion from manifest identifiers to valid Go
// identifiers, including reserved word escaping and doc comment cleanup.

package routegen

import (
	"strings"
	"unicode"
)

// maxDescriptionLength is the maximum length for route docs in generated
// comments before truncation. This keeps generated code readable and
// prevents excessively long comment lines.
const maxDescriptionLength = 200

// goReservedWords contains Go reserved keywords that cannot be used as
// identifiers. Only actual keywords are listed, not predeclared identifiers
// like "error", because those can be shadowed and make fine argument names.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// escapeReservedWord appends an underscore when name is a Go keyword.
// The check is case-insensitive so escaping survives case conversion.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// toExportedName converts a manifest route name to an exported Go identifier
// base (PascalCase). It splits on any non-alphanumeric character and ensures
// the name starts with a letter. Reserved words need no escaping here because
// the base is always combined with a suffix or lowercased by toArgName, which
// escapes on its own.
func toExportedName(s string) string {
	if s == "" {
		return "Route"
	}

	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if capitalizeNext {
				result.WriteRune(unicode.ToUpper(r))
				capitalizeNext = false
			} else {
				result.WriteRune(r)
			}
		} else {
			capitalizeNext = true
		}
	}

	name := result.String()
	if name == "" {
		return "Route"
	}
	if !unicode.IsLetter(rune(name[0])) {
		name = "R" + name
	}

	return name
}

// toFuncName converts a route name to the name of its generated helper.
func toFuncName(route string) string {
	return toExportedName(route) + "URL"
}

// toConstName converts a route name to the name of its template constant.
func toConstName(route string) string {
	return toExportedName(route) + "Template"
}

// toArgName converts a parameter name to a valid Go argument name
// (camelCase). It handles special characters and escapes Go reserved words.
func toArgName(s string) string {
	name := toExportedName(s)
	name = strings.ToLower(name[:1]) + name[1:]
	return escapeReservedWord(name)
}

// cleanDescription prepares a manifest doc string for use in Go comments.
// It removes newlines, trims whitespace, and truncates long descriptions.
func cleanDescription(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if len(s) > maxDescriptionLength {
		// Truncate at rune boundary to avoid splitting multi-byte characters
		runes := []rune(s)
		if len(runes) > maxDescriptionLength-3 {
			s = string(runes[:maxDescriptionLength-3]) + "..."
		}
	}
	return s
}
