package urlbuilder

import (
	"fmt"
	"text/template"
	"time"
)

// DefaultBufferCapacity is the output buffer ceiling, in bytes, used when
// WithBufferCapacity is not given.
const DefaultBufferCapacity = 4096

// Option is a functional option for configuring URL building.
type Option func(*config) error

// config holds the configuration for build and flatten operations.
type config struct {
	// Output formats
	boolFormat     BooleanFormat
	arrayFormat    ArrayFormat
	nameFormat     NameFormat
	accessorFormat AccessorFormat
	delimiter      byte

	// Flattening behavior
	jsonMode    bool
	keyTemplate *template.Template
	timeLayout  string

	// Resource limits
	capacity int // output buffer ceiling in bytes
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		delimiter:  ',',
		timeLayout: time.RFC3339,
		capacity:   DefaultBufferCapacity,
	}
}

// WithBooleanFormat sets how boolean values render.
// Default is BooleanDefault ("true"/"false").
func WithBooleanFormat(f BooleanFormat) Option {
	return func(c *config) error {
		c.boolFormat = f
		return nil
	}
}

// WithArrayFormat sets how sequence values serialize into the query string.
// Default is ArrayRepeat (key=a&key=b).
func WithArrayFormat(f ArrayFormat) Option {
	return func(c *config) error {
		c.arrayFormat = f
		return nil
	}
}

// WithNameFormat sets how property names convert into parameter keys.
// Default is NameAsIs.
func WithNameFormat(f NameFormat) Option {
	return func(c *config) error {
		c.nameFormat = f
		return nil
	}
}

// WithAccessorFormat sets how nested property keys compose with their
// parent prefix. Default is AccessorDot (parent.child).
func WithAccessorFormat(f AccessorFormat) Option {
	return func(c *config) error {
		c.accessorFormat = f
		return nil
	}
}

// WithDelimiter sets the element separator used by ArrayDelimited.
// Default is ','.
func WithDelimiter(d rune) Option {
	return func(c *config) error {
		if d < 0x21 || d > 0x7e {
			return fmt.Errorf("urlbuilder: delimiter %q must be a printable ASCII character", d)
		}
		c.delimiter = byte(d)
		return nil
	}
}

// WithBufferCapacity sets the output buffer ceiling in bytes. Builds whose
// result would exceed the ceiling fail with [urlerrors.ErrBufferOverflow].
// Default: DefaultBufferCapacity.
func WithBufferCapacity(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("urlbuilder: buffer capacity must be positive, got %d", n)
		}
		c.capacity = n
		return nil
	}
}

// WithTimeLayout sets the layout string used to render time.Time values.
// Default is time.RFC3339, which matches how times serialize under JSON
// flattening.
func WithTimeLayout(layout string) Option {
	return func(c *config) error {
		if layout == "" {
			return fmt.Errorf("urlbuilder: time layout cannot be empty")
		}
		c.timeLayout = layout
		return nil
	}
}

// WithJSONFlattening routes parameter objects through their JSON encoding
// before flattening. Field order, omitempty handling, and custom
// MarshalJSON implementations then follow the object's JSON shape rather
// than its Go shape. Default is false (direct field traversal).
func WithJSONFlattening(enabled bool) Option {
	return func(c *config) error {
		c.jsonMode = enabled
		return nil
	}
}

// WithKeyNameTemplate sets a template that overrides the name format when
// composing parameter keys. The template executes against a [KeyNameContext]
// and may use the helper functions documented there.
//
// Example:
//
//	urlbuilder.WithKeyNameTemplate("{{ .Name | snake }}")
//
// The template is parsed and probed against a sample context up front, so a
// malformed template fails here rather than during a build.
func WithKeyNameTemplate(tmpl string) Option {
	return func(c *config) error {
		t, err := parseKeyNameTemplate(tmpl)
		if err != nil {
			return err
		}
		c.keyTemplate = t
		return nil
	}
}
