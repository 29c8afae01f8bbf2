package urlbuilder

import (
	"reflect"
	"strings"
)

// paramEntry is one key/value pair of a ParamMap, held in insertion order.
type paramEntry struct {
	key   string // original casing as first produced
	value any
}

// ParamMap is an ordered mapping from parameter keys to values. Lookup is
// case-insensitive while the original key casing is preserved for output.
// Writing an existing key overwrites its value but keeps the first-seen
// casing, mirroring insertion into a case-insensitive map.
//
// After flattening, every value is either a scalar or a []any of scalars;
// values set directly by callers are normalized the same way by [ParamMap.Set].
// A ParamMap is built fresh per build call and is not safe for concurrent
// mutation.
type ParamMap struct {
	entries []paramEntry
	index   map[string]int // folded key -> entries position
}

// NewParamMap returns an empty ParamMap.
func NewParamMap() *ParamMap {
	return &ParamMap{index: make(map[string]int)}
}

// foldKey is the case-insensitive identity used for lookup.
func foldKey(key string) string {
	return strings.ToLower(key)
}

// Len returns the number of entries.
func (m *ParamMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Set stores value under key, overwriting any existing entry with the same
// case-insensitive key. The stored key keeps the casing of the first write.
// Sequence values (slices and arrays other than []byte) are normalized to
// []any; []byte is stored as a string.
func (m *ParamMap) Set(key string, value any) {
	value = normalizeValue(value)
	folded := foldKey(key)
	if i, ok := m.index[folded]; ok {
		m.entries[i].value = value
		return
	}
	m.index[folded] = len(m.entries)
	m.entries = append(m.entries, paramEntry{key: key, value: value})
}

// Get returns the value stored under key, looked up case-insensitively.
func (m *ParamMap) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[foldKey(key)]
	if !ok {
		return nil, false
	}
	return m.entries[i].value, true
}

// Has reports whether key is present, looked up case-insensitively.
func (m *ParamMap) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[foldKey(key)]
	return ok
}

// Remove deletes the entry for key, looked up case-insensitively.
// It reports whether an entry was removed. Iteration order of the
// remaining entries is unchanged.
func (m *ParamMap) Remove(key string) bool {
	if m == nil {
		return false
	}
	folded := foldKey(key)
	i, ok := m.index[folded]
	if !ok {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, folded)
	for k, pos := range m.index {
		if pos > i {
			m.index[k] = pos - 1
		}
	}
	return true
}

// Keys returns the keys in insertion order, with original casing.
func (m *ParamMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// clone returns an independent copy of the map. Values are shared; they are
// never mutated in place after normalization.
func (m *ParamMap) clone() *ParamMap {
	out := NewParamMap()
	if m == nil {
		return out
	}
	out.entries = append(out.entries, m.entries...)
	for k, v := range m.index {
		out.index[k] = v
	}
	return out
}

// normalizeValue maps arbitrary values onto the shapes a ParamMap holds:
// scalars stay as-is, []byte becomes a string, and any other slice or array
// becomes a []any of its elements. Elements are not normalized recursively;
// non-scalar elements render via their default string form.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(t)
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []int:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	default:
		return v
	}
}
