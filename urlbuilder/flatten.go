package urlbuilder

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/catenary/urltools/internal/keypath"
	"github.com/catenary/urltools/internal/maputil"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	decimalType  = reflect.TypeOf(decimal.Decimal{})
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// flatten converts an arbitrary parameter object into a flat ParamMap.
// Flattening never fails: values that cannot be represented are skipped.
func (c *config) flatten(input any) *ParamMap {
	params := NewParamMap()
	if input == nil {
		return params
	}

	// Already-flat maps pass through verbatim in every mode: no name
	// formatting, no accessor composition.
	if pm, ok := input.(*ParamMap); ok {
		return pm.clone()
	}
	if copyFlatMap(input, params) {
		return params
	}

	if c.jsonMode {
		c.flattenJSON(input, params)
		return params
	}

	rv := deref(reflect.ValueOf(input))
	if !rv.IsValid() {
		return params
	}

	kb := keypath.Get(keypathStyle(c.accessorFormat))
	defer keypath.Put(kb)
	switch {
	case rv.Kind() == reflect.Struct && !isScalarType(rv.Type()):
		c.walkStruct(rv, kb, params)
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		// A string-keyed map with nested object values walks like any
		// other document, top-level keys included.
		c.walkMap(rv, kb, params)
	default:
		// Scalars, sequences, and non-string-keyed maps carry no
		// property names to flatten.
	}
	return params
}

// copyFlatMap copies a pre-flattened string-keyed map into params verbatim,
// in key order, and reports whether it did. A map counts as pre-flattened
// only when every value is already in a ParamMap's final shape; one nested
// object value sends the whole input down the walk instead.
func copyFlatMap(input any, params *ParamMap) bool {
	switch m := input.(type) {
	case map[string]any:
		for _, v := range m {
			if !isFlatValue(reflect.ValueOf(v)) {
				return false
			}
		}
		for _, k := range maputil.SortedKeys(m) {
			params.Set(k, m[k])
		}
		return true
	case map[string]string:
		for _, k := range maputil.SortedKeys(m) {
			params.Set(k, m[k])
		}
		return true
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return false
	}
	keys := rv.MapKeys()
	for _, k := range keys {
		if !isFlatValue(rv.MapIndex(k)) {
			return false
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, k := range keys {
		params.Set(k.String(), rv.MapIndex(k).Interface())
	}
	return true
}

// isFlatValue reports whether v needs no further flattening: nil, a scalar,
// or a sequence. Objects (maps and non-scalar structs) are not flat.
func isFlatValue(v reflect.Value) bool {
	rv := deref(v)
	if !rv.IsValid() {
		return true
	}
	if isScalarType(rv.Type()) {
		return true
	}
	k := rv.Kind()
	return k == reflect.Slice || k == reflect.Array
}

// walkStruct flattens the exported fields of a struct in declaration order.
func (c *config) walkStruct(rv reflect.Value, kb *keypath.Builder, params *ParamMap) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Skip unexported fields
		if !field.IsExported() {
			continue
		}

		// Parse json tag for field name and options
		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue // Explicitly excluded
		}
		name, jsonOpts := parseJSONTag(jsonTag)

		fv := rv.Field(i)

		// Embedded structs without a tag name inline into the parent
		if field.Anonymous && name == "" {
			ev := deref(fv)
			if ev.IsValid() && ev.Kind() == reflect.Struct && !isScalarType(ev.Type()) {
				c.walkStruct(ev, kb, params)
				continue
			}
		}

		if name == "" {
			name = field.Name
		}
		if hasOmitempty(jsonOpts) && fv.IsZero() {
			continue
		}

		c.flattenField(fv, name, kb, params)
	}
}

// walkMap flattens a string-keyed map in ascending key order.
func (c *config) walkMap(rv reflect.Value, kb *keypath.Builder, params *ParamMap) {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, k := range keys {
		c.flattenField(rv.MapIndex(k), k.String(), kb, params)
	}
}

// flattenField flattens one named value: scalars store under their composed
// key, sequences become ordered element lists, and nested objects recurse
// with the formatted name pushed onto the prefix.
func (c *config) flattenField(fv reflect.Value, name string, kb *keypath.Builder, params *ParamMap) {
	rv := deref(fv)
	if !rv.IsValid() {
		return // null fields are skipped
	}

	formatted := c.formatKeyName(name, c.templatePrefix(kb), kb.Depth())

	if isScalarType(rv.Type()) {
		params.Set(kb.Key(formatted), rv.Interface())
		return
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return
		}
		params.Set(kb.Key(formatted), c.sequenceValues(rv))

	case reflect.Struct:
		kb.Push(formatted)
		c.walkStruct(rv, kb, params)
		kb.Pop()

	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return
		}
		kb.Push(formatted)
		c.walkMap(rv, kb, params)
		kb.Pop()
	}
	// chan, func, and other unrepresentable kinds are skipped
}

// sequenceValues collects a sequence's elements as a flat list. Elements
// never recurse: compound elements keep their default string form.
func (c *config) sequenceValues(rv reflect.Value) []any {
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		ev := deref(rv.Index(i))
		if !ev.IsValid() {
			out = append(out, nil)
			continue
		}
		if isScalarType(ev.Type()) {
			out = append(out, ev.Interface())
			continue
		}
		out = append(out, fmt.Sprintf("%v", ev.Interface()))
	}
	return out
}

// templatePrefix materializes the current prefix only when a key name
// template can observe it.
func (c *config) templatePrefix(kb *keypath.Builder) string {
	if c.keyTemplate == nil {
		return ""
	}
	return kb.String()
}

// deref unwraps pointers and interfaces to the underlying value.
// Returns an invalid value when a nil is found along the way.
func deref(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// isScalarType reports whether values of t flatten as a single rendered
// value rather than an object or sequence. Byte slices count as strings,
// and fmt.Stringer implementors (enumeration types, UUIDs) render by name.
func isScalarType(t reflect.Type) bool {
	if t == timeType || t == decimalType {
		return true
	}
	if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
		return true
	}
	if t.Implements(stringerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// keypathStyle maps an accessor format to its key composition style.
func keypathStyle(f AccessorFormat) keypath.Style {
	switch f {
	case AccessorBracket:
		return keypath.StyleBracket
	case AccessorFlatten:
		return keypath.StyleFlatten
	default:
		return keypath.StyleDot
	}
}

// parseJSONTag parses a struct field's json tag.
// Returns the field name and options (like "omitempty").
func parseJSONTag(tag string) (name string, opts []string) {
	if tag == "" {
		return "", nil
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	if len(parts) > 1 {
		opts = parts[1:]
	}
	return name, opts
}

// hasOmitempty checks if json tag options include omitempty.
func hasOmitempty(opts []string) bool {
	for _, opt := range opts {
		if opt == "omitempty" {
			return true
		}
	}
	return false
}
