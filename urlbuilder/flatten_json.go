package urlbuilder

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/catenary/urltools/internal/keypath"
)

// flattenJSON flattens input through its JSON encoding: the value is
// marshaled and its object fields walked in document order, so omitempty,
// custom MarshalJSON implementations, and field order all follow the JSON
// shape. Values that do not marshal to an object yield nothing.
func (c *config) flattenJSON(input any, params *ParamMap) {
	data, err := json.Marshal(input)
	if err != nil {
		return
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		// Only objects carry property names to flatten.
		return
	}

	kb := keypath.Get(keypathStyle(c.accessorFormat))
	defer keypath.Put(kb)
	c.walkJSONObject(dec, kb, params)
}

// walkJSONObject consumes one JSON object from dec, the opening brace
// already read, and flattens its fields. Nested objects recurse with their
// formatted name pushed onto the prefix; null fields are skipped.
func (c *config) walkJSONObject(dec *json.Decoder, kb *keypath.Builder, params *ParamMap) {
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return
		}
		key, ok := keyTok.(string)
		if !ok {
			return
		}

		valTok, err := dec.Token()
		if err != nil {
			return
		}

		switch v := valTok.(type) {
		case json.Delim:
			switch v {
			case '{':
				formatted := c.formatKeyName(key, c.templatePrefix(kb), kb.Depth())
				kb.Push(formatted)
				c.walkJSONObject(dec, kb, params)
				kb.Pop()
			case '[':
				formatted := c.formatKeyName(key, c.templatePrefix(kb), kb.Depth())
				params.Set(kb.Key(formatted), decodeJSONArray(dec))
			}
		case nil:
			// null fields are skipped
		default:
			formatted := c.formatKeyName(key, c.templatePrefix(kb), kb.Depth())
			params.Set(kb.Key(formatted), v)
		}
	}

	// Closing brace
	if _, err := dec.Token(); err != nil {
		return
	}
}

// decodeJSONArray consumes one JSON array from dec, the opening bracket
// already read, and collects its elements. Elements never recurse: compound
// elements keep their default string form.
func decodeJSONArray(dec *json.Decoder) []any {
	out := []any{}
	for dec.More() {
		var el any
		if err := dec.Decode(&el); err != nil {
			return out
		}
		switch el.(type) {
		case nil, string, bool, json.Number:
			out = append(out, el)
		default:
			out = append(out, fmt.Sprintf("%v", el))
		}
	}

	// Closing bracket
	if _, err := dec.Token(); err != nil {
		return out
	}
	return out
}
