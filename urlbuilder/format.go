package urlbuilder

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// BooleanFormat controls how boolean values render.
type BooleanFormat int

const (
	// BooleanDefault renders Go's canonical boolean text: "true"/"false".
	BooleanDefault BooleanFormat = iota

	// BooleanLowercase renders "true"/"false". In Go this coincides with
	// BooleanDefault; the format exists so configurations written against
	// platforms with cased boolean text keep their meaning.
	BooleanLowercase

	// BooleanNumeric renders "1"/"0".
	BooleanNumeric

	// BooleanOnOff renders "on"/"off".
	BooleanOnOff
)

// String returns the string representation of the boolean format.
func (f BooleanFormat) String() string {
	switch f {
	case BooleanDefault:
		return "default"
	case BooleanLowercase:
		return "lowercase"
	case BooleanNumeric:
		return "numeric"
	case BooleanOnOff:
		return "onoff"
	default:
		return "unknown"
	}
}

// ParseBooleanFormat converts a name like "numeric" to its BooleanFormat.
func ParseBooleanFormat(s string) (BooleanFormat, error) {
	switch s {
	case "", "default":
		return BooleanDefault, nil
	case "lowercase":
		return BooleanLowercase, nil
	case "numeric":
		return BooleanNumeric, nil
	case "onoff":
		return BooleanOnOff, nil
	default:
		return BooleanDefault, fmt.Errorf("urlbuilder: unknown boolean format %q (want default, lowercase, numeric, or onoff)", s)
	}
}

// ArrayFormat controls how sequence values serialize into the query string.
type ArrayFormat int

const (
	// ArrayRepeat emits "key=elem" once per element: key=a&key=b.
	ArrayRepeat ArrayFormat = iota

	// ArrayIndexed emits bracketed positions: key[0]=a&key[1]=b.
	ArrayIndexed

	// ArrayDelimited emits a single pair with delimited elements: key=a,b.
	ArrayDelimited
)

// String returns the string representation of the array format.
func (f ArrayFormat) String() string {
	switch f {
	case ArrayRepeat:
		return "repeat"
	case ArrayIndexed:
		return "indexed"
	case ArrayDelimited:
		return "delimited"
	default:
		return "unknown"
	}
}

// ParseArrayFormat converts a name like "indexed" to its ArrayFormat.
func ParseArrayFormat(s string) (ArrayFormat, error) {
	switch s {
	case "", "repeat":
		return ArrayRepeat, nil
	case "indexed":
		return ArrayIndexed, nil
	case "delimited":
		return ArrayDelimited, nil
	default:
		return ArrayRepeat, fmt.Errorf("urlbuilder: unknown array format %q (want repeat, indexed, or delimited)", s)
	}
}

// NameFormat controls how property names convert into parameter keys.
type NameFormat int

const (
	// NameAsIs keeps property names exactly as found.
	NameAsIs NameFormat = iota

	// NameCamel lowercases only the first character: "UserName" -> "userName".
	NameCamel

	// NameSnake inserts an underscore before every interior uppercase letter
	// and lowercases the whole name: "UserName" -> "user_name".
	NameSnake
)

// String returns the string representation of the name format.
func (f NameFormat) String() string {
	switch f {
	case NameAsIs:
		return "asis"
	case NameCamel:
		return "camel"
	case NameSnake:
		return "snake"
	default:
		return "unknown"
	}
}

// ParseNameFormat converts a name like "snake" to its NameFormat.
func ParseNameFormat(s string) (NameFormat, error) {
	switch s {
	case "", "asis":
		return NameAsIs, nil
	case "camel":
		return NameCamel, nil
	case "snake":
		return NameSnake, nil
	default:
		return NameAsIs, fmt.Errorf("urlbuilder: unknown name format %q (want asis, camel, or snake)", s)
	}
}

// AccessorFormat controls how a nested property key composes with its
// parent prefix.
type AccessorFormat int

const (
	// AccessorDot joins with dots: parent.child.
	AccessorDot AccessorFormat = iota

	// AccessorBracket wraps nested names in brackets: parent[child].
	AccessorBracket

	// AccessorFlatten discards the prefix, keeping the child name alone.
	// Sibling names under different parents silently overwrite one another;
	// that collision is the point of this mode.
	AccessorFlatten
)

// String returns the string representation of the accessor format.
func (f AccessorFormat) String() string {
	switch f {
	case AccessorDot:
		return "dot"
	case AccessorBracket:
		return "bracket"
	case AccessorFlatten:
		return "flatten"
	default:
		return "unknown"
	}
}

// ParseAccessorFormat converts a name like "bracket" to its AccessorFormat.
func ParseAccessorFormat(s string) (AccessorFormat, error) {
	switch s {
	case "", "dot":
		return AccessorDot, nil
	case "bracket":
		return AccessorBracket, nil
	case "flatten":
		return AccessorFlatten, nil
	default:
		return AccessorDot, fmt.Errorf("urlbuilder: unknown accessor format %q (want dot, bracket, or flatten)", s)
	}
}

// renderBool renders a boolean per the configured format.
func (c *config) renderBool(v bool) string {
	switch c.boolFormat {
	case BooleanNumeric:
		if v {
			return "1"
		}
		return "0"
	case BooleanOnOff:
		if v {
			return "on"
		}
		return "off"
	default:
		return strconv.FormatBool(v)
	}
}

// renderScalar renders a single value to its query-string form. Booleans
// follow the boolean format; numbers render in base-10 decimal; times use
// the configured layout; decimals keep their exact fixed-point form;
// fmt.Stringer implementors (enumeration types, json.Number, UUIDs) render
// by name. No quoting or percent-encoding happens at this layer.
func (c *config) renderScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return c.renderBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(c.timeLayout)
	case decimal.Decimal:
		return t.String()
	case fmt.Stringer:
		return t.String()
	}

	// Named basic types (enumerations without String methods) land here.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return c.renderBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
