package urlbuilder

import (
	"strconv"
	"strings"

	"github.com/catenary/urltools/internal/stringutil"
	"github.com/catenary/urltools/urlerrors"
)

// Builder builds URLs from path templates and parameter objects under one
// shared configuration. A Builder is immutable after New and safe for
// concurrent use.
type Builder struct {
	cfg *config
}

// New returns a Builder configured by the given options.
func New(opts ...Option) (*Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return &Builder{cfg: cfg}, nil
}

// Build renders template with params into a complete URL. The template is
// validated up front; params is flattened and every ":name" token with a
// bound value substitutes in place. Parameters left over after substitution
// append as query pairs in flattening order. A nil params returns the
// validated template unchanged.
//
// The result never exceeds the configured buffer capacity: a build that
// would overflow fails with [urlerrors.ErrBufferOverflow] and produces no
// output rather than a truncated URL.
func (b *Builder) Build(template string, params any) (string, error) {
	if err := ValidateTemplate(template); err != nil {
		return "", err
	}

	buf := getBuffer(b.cfg.capacity)
	defer putBuffer(buf)

	if err := buf.appendString(template); err != nil {
		return "", err
	}
	if params == nil {
		return buf.String(), nil
	}

	pm := b.cfg.flatten(params)

	if err := b.substitute(buf, pm); err != nil {
		return "", err
	}
	if err := b.appendQuery(buf, pm); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Flatten converts a parameter object into its flat key/value form without
// building a URL. Flattening never fails; unrepresentable values are
// skipped.
func (b *Builder) Flatten(input any) *ParamMap {
	return b.cfg.flatten(input)
}

// RenderValues renders one parameter value to its query-string forms:
// sequences yield one string per element, anything else a single string.
func (b *Builder) RenderValues(v any) []string {
	switch t := normalizeValue(v).(type) {
	case []any:
		out := make([]string, len(t))
		for i, e := range t {
			out[i] = b.cfg.renderScalar(e)
		}
		return out
	default:
		return []string{b.cfg.renderScalar(t)}
	}
}

// substitute replaces ":name" tokens that have a bound value, consuming
// each binding it uses. Unbound tokens stay literal. Tokens whose value
// renders empty also stay literal and keep their map entry, so the value
// still surfaces as a query pair.
func (b *Builder) substitute(buf *buffer, pm *ParamMap) error {
	i := 0
	for i < buf.len() {
		if buf.byteAt(i) != ':' {
			i++
			continue
		}

		start := i + 1
		end := start
		for end < buf.len() && isPlaceholderNameByte(buf.byteAt(end)) {
			end++
		}
		if end == start {
			// Bare colon stays literal
			i++
			continue
		}

		name := string(buf.slice(start, end))
		value, ok := pm.Get(name)
		if !ok {
			i = end
			continue
		}

		rendered := b.cfg.renderScalar(value)
		if rendered == "" {
			i = end
			continue
		}

		if err := buf.splice(i, end, rendered); err != nil {
			return err
		}
		i += len(rendered)
		pm.Remove(name)
	}
	return nil
}

// appendQuery appends the remaining parameters as query pairs, '?' before
// the first pair and '&' before each one after.
func (b *Builder) appendQuery(buf *buffer, pm *ParamMap) error {
	sep := byte('?')

	writePair := func(key, value string) error {
		if err := buf.appendByte(sep); err != nil {
			return err
		}
		sep = '&'
		if err := buf.appendString(key); err != nil {
			return err
		}
		if err := buf.appendByte('='); err != nil {
			return err
		}
		return buf.appendString(value)
	}

	for _, e := range pm.entries {
		elems, isSeq := e.value.([]any)
		if !isSeq {
			if err := writePair(e.key, b.cfg.renderScalar(e.value)); err != nil {
				return err
			}
			continue
		}

		switch b.cfg.arrayFormat {
		case ArrayIndexed:
			for idx, el := range elems {
				key := e.key + "[" + strconv.Itoa(idx) + "]"
				if err := writePair(key, b.cfg.renderScalar(el)); err != nil {
					return err
				}
			}

		case ArrayDelimited:
			var sb strings.Builder
			for idx, el := range elems {
				if idx > 0 {
					sb.WriteByte(b.cfg.delimiter)
				}
				sb.WriteString(b.cfg.renderScalar(el))
			}
			if err := writePair(e.key, sb.String()); err != nil {
				return err
			}

		default: // ArrayRepeat
			for _, el := range elems {
				if err := writePair(e.key, b.cfg.renderScalar(el)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// isPlaceholderNameByte reports whether c can be part of a placeholder
// name: ASCII letters, digits, and underscore.
func isPlaceholderNameByte(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

// ValidateTemplate reports whether template is a well-formed URI reference,
// returning a [urlerrors.TemplateError] when it is not. Placeholder tokens
// like ":id" are part of the well-formed shape; whitespace, control bytes,
// and characters a URL cannot carry unencoded are not.
func ValidateTemplate(template string) error {
	if !stringutil.IsWellFormedURIReference(template) {
		return &urlerrors.TemplateError{
			Template: template,
			Reason:   "not a well-formed URI reference",
		}
	}
	return nil
}

// PlaceholderNames returns the distinct placeholder names in template, in
// order of first appearance. The scan follows the same rules as [Build]: a
// ':' starts a placeholder and its name is the longest run of ASCII
// letters, digits, and underscores that follows. Names differing only in
// case report once, under the first spelling seen, because parameter
// lookup is case-insensitive.
func PlaceholderNames(template string) []string {
	var names []string
	seen := make(map[string]bool)
	for i := 0; i < len(template); i++ {
		if template[i] != ':' {
			continue
		}
		start := i + 1
		end := start
		for end < len(template) && isPlaceholderNameByte(template[end]) {
			end++
		}
		if end == start {
			continue
		}
		name := template[start:end]
		folded := foldKey(name)
		if !seen[folded] {
			seen[folded] = true
			names = append(names, name)
		}
		i = end - 1
	}
	return names
}

// Build builds a URL from template and params using functional options.
//
// This is a convenience function for one-off builds. For building many URLs
// under one configuration, use [New] to create a reusable Builder.
//
// Example:
//
//	u, err := urlbuilder.Build("/users/:id", map[string]any{"id": 123, "filter": "active"})
//	// u == "/users/123?filter=active"
func Build(template string, params any, opts ...Option) (string, error) {
	b, err := New(opts...)
	if err != nil {
		return "", err
	}
	return b.Build(template, params)
}

// Flatten converts a parameter object into its flat key/value form using
// functional options.
//
// Example:
//
//	pm, err := urlbuilder.Flatten(user, urlbuilder.WithNameFormat(urlbuilder.NameSnake))
func Flatten(input any, opts ...Option) (*ParamMap, error) {
	b, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return b.Flatten(input), nil
}
