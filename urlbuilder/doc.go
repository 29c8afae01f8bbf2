// Package urlbuilder renders URLs from path templates and arbitrary
// parameter objects.
//
// A template is a URI reference containing ":name" placeholder tokens.
// Parameters may arrive as a flat map, a struct, or anything in between:
// the builder flattens the object into key/value pairs, substitutes every
// placeholder that has a bound value, and appends the remaining pairs as a
// query string. No percent-encoding is applied; values pass through as
// rendered.
//
// # Quick Start
//
// Build a URL in one call using functional options:
//
//	u, err := urlbuilder.Build("/users/:id", map[string]any{
//		"id":     123,
//		"filter": "active",
//	})
//	// u == "/users/123?filter=active"
//
// Or create a reusable Builder when many URLs share one configuration:
//
//	b, err := urlbuilder.New(
//		urlbuilder.WithArrayFormat(urlbuilder.ArrayIndexed),
//		urlbuilder.WithNameFormat(urlbuilder.NameSnake),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	u1, _ := b.Build("/search", query1)
//	u2, _ := b.Build("/search", query2)
//
// # Templates
//
// A placeholder starts at a colon and extends across the longest run of
// ASCII letters, digits, and underscores. A colon not followed by such a
// run is literal text. Placeholders without a bound value stay in the
// output verbatim, which keeps port numbers ("https://host:8080/x")
// intact unless a parameter named "8080" is bound. Bound placeholders
// whose value renders to an empty string also stay, and the value
// surfaces as a query pair instead.
//
// Templates are validated before any assembly. A template that is not a
// well-formed URI reference fails with [urlerrors.ErrInvalidTemplate].
//
// # Flattening
//
// Flat string-keyed maps (and [ParamMap] values) pass through verbatim.
// A map is flat while every value is a scalar or a sequence; a nested
// object value sends the whole map down the walk like any other document.
// Walked inputs visit exported struct fields in declaration order and map
// entries in key order. Nested objects compose keys through the accessor
// format (parent.child, parent[child], or the bare child name), property
// names convert through the name format, and null fields are skipped.
// Sequences keep their element order and never recurse.
//
// With [WithJSONFlattening] the object is flattened through its JSON
// encoding instead, so json tags, omitempty, and custom MarshalJSON
// implementations control the result. Both modes produce the same pairs
// for objects whose Go shape and JSON shape agree.
//
// [WithKeyNameTemplate] overrides the name format with a template executed
// per property:
//
//	b, err := urlbuilder.New(
//		urlbuilder.WithKeyNameTemplate("{{ .Name | snake }}"),
//	)
//
// # Value Rendering
//
// Scalars render without quoting: numbers in base-10 decimal, booleans per
// [BooleanFormat], times per the configured layout, and fmt.Stringer
// implementors (enumeration types, UUIDs, json.Number) by their String
// method. Sequences render per [ArrayFormat]:
//
//	ArrayRepeat     ids=1&ids=2&ids=3
//	ArrayIndexed    ids[0]=1&ids[1]=2&ids[2]=3
//	ArrayDelimited  ids=1,2,3
//
// # Output Limits
//
// Every build writes through a capacity-bounded buffer. A result that
// would exceed the ceiling fails with [urlerrors.ErrBufferOverflow] and
// produces no partial output. The default ceiling is
// [DefaultBufferCapacity]; raise it with [WithBufferCapacity] when
// assembling unusually large URLs.
//
// # Related Packages
//
//   - [github.com/catenary/urltools/urlerrors]: sentinel and typed errors
//     returned by this package
//   - [github.com/catenary/urltools/routegen]: generates typed URL helper
//     functions from route manifests using this package's templates
package urlbuilder
