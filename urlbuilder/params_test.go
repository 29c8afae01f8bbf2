package urlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamMap_SetGet(t *testing.T) {
	pm := NewParamMap()
	pm.Set("id", 123)
	pm.Set("filter", "active")

	v, ok := pm.Get("id")
	require.True(t, ok)
	assert.Equal(t, 123, v)

	v, ok = pm.Get("filter")
	require.True(t, ok)
	assert.Equal(t, "active", v)

	_, ok = pm.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, pm.Len())
}

func TestParamMap_CaseInsensitiveLookup(t *testing.T) {
	pm := NewParamMap()
	pm.Set("UserName", "alice")

	v, ok := pm.Get("username")
	require.True(t, ok)
	assert.Equal(t, "alice", v)

	v, ok = pm.Get("USERNAME")
	require.True(t, ok)
	assert.Equal(t, "alice", v)

	assert.True(t, pm.Has("userName"))
}

func TestParamMap_OverwriteKeepsFirstCasing(t *testing.T) {
	pm := NewParamMap()
	pm.Set("Filter", "a")
	pm.Set("filter", "b")

	assert.Equal(t, 1, pm.Len())
	assert.Equal(t, []string{"Filter"}, pm.Keys(), "first-seen casing should survive overwrite")

	v, ok := pm.Get("FILTER")
	require.True(t, ok)
	assert.Equal(t, "b", v, "last write should win")
}

func TestParamMap_InsertionOrder(t *testing.T) {
	pm := NewParamMap()
	pm.Set("zebra", 1)
	pm.Set("apple", 2)
	pm.Set("mango", 3)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, pm.Keys())
}

func TestParamMap_Remove(t *testing.T) {
	pm := NewParamMap()
	pm.Set("a", 1)
	pm.Set("b", 2)
	pm.Set("c", 3)

	assert.True(t, pm.Remove("B"), "removal should be case-insensitive")
	assert.False(t, pm.Remove("b"), "second removal should find nothing")

	assert.Equal(t, []string{"a", "c"}, pm.Keys())

	v, ok := pm.Get("c")
	require.True(t, ok, "later entries must stay reachable after removal")
	assert.Equal(t, 3, v)
}

func TestParamMap_NilValues(t *testing.T) {
	pm := NewParamMap()
	pm.Set("empty", nil)

	v, ok := pm.Get("empty")
	require.True(t, ok, "nil values are present entries, not absences")
	assert.Nil(t, v)
}

func TestParamMap_NilReceiver(t *testing.T) {
	var pm *ParamMap

	assert.Equal(t, 0, pm.Len())
	assert.Nil(t, pm.Keys())
	assert.False(t, pm.Has("x"))
	assert.False(t, pm.Remove("x"))

	_, ok := pm.Get("x")
	assert.False(t, ok)
}

func TestParamMap_Clone(t *testing.T) {
	pm := NewParamMap()
	pm.Set("a", 1)
	pm.Set("b", 2)

	cp := pm.clone()
	cp.Set("c", 3)
	cp.Set("a", 99)

	assert.Equal(t, []string{"a", "b"}, pm.Keys(), "clone mutations must not reach the original")
	v, _ := pm.Get("a")
	assert.Equal(t, 1, v)

	assert.Equal(t, []string{"a", "b", "c"}, cp.Keys())
	v, _ = cp.Get("a")
	assert.Equal(t, 99, v)
}

// TestNormalizeValue covers the value shapes a ParamMap stores.
func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		// Scalars pass through
		{name: "string", input: "x", expected: "x"},
		{name: "int", input: 7, expected: 7},
		{name: "bool", input: true, expected: true},
		{name: "float", input: 1.5, expected: 1.5},
		{name: "nil", input: nil, expected: nil},

		// Byte slices become strings
		{name: "byte slice", input: []byte("raw"), expected: "raw"},

		// Sequences normalize to []any
		{name: "any slice", input: []any{"a", 1}, expected: []any{"a", 1}},
		{name: "string slice", input: []string{"a", "b"}, expected: []any{"a", "b"}},
		{name: "int slice", input: []int{1, 2}, expected: []any{1, 2}},
		{name: "float slice", input: []float64{1.5, 2.5}, expected: []any{1.5, 2.5}},
		{name: "array", input: [2]int{1, 2}, expected: []any{1, 2}},
		{name: "empty slice", input: []string{}, expected: []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeValue(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeValue_NamedByteSlice(t *testing.T) {
	type raw []byte
	got := normalizeValue(raw("payload"))
	assert.Equal(t, "payload", got)
}
