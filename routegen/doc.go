// Package routegen generates typed Go URL helpers from a route manifest.
//
// A manifest is a small YAML document listing named URL templates. For each
// route, routegen emits a template constant and a helper function whose
// arguments mirror the route's parameters, so call sites get compile-time
// checking instead of hand-assembled maps:
//
//	routes:
//	  - name: userProfile
//	    template: /users/:id/profile
//	    params:
//	      - name: id
//	        type: int64
//
// generates
//
//	const UserProfileTemplate = "/users/:id/profile"
//
//	func UserProfileURL(id int64) (string, error) {
//		return urlbuilder.Build(UserProfileTemplate, map[string]any{
//			"id": id,
//		})
//	}
//
// # Quick Start
//
// Generate helpers using functional options:
//
//	result, err := routegen.GenerateWithOptions(
//		routegen.WithManifestPath("routes.yaml"),
//		routegen.WithPackageName("approutes"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./approutes"); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := routegen.New()
//	g.PackageName = "approutes"
//	result, _ := g.Generate("routes.yaml")
//	result.WriteFiles("./approutes")
//
// # Manifest Format
//
// The manifest's top level has an optional "package" name and a "routes"
// list. Each route needs a unique "name" and a "template"; "doc", "params",
// and "query" are optional. Path parameters are inferred from the ":name"
// placeholders in the template, and a route's "params" entries refine their
// types. "query" entries add parameters that always land in the query
// string.
//
// # Parameter Types
//
// Manifest types map to Go types as follows:
//   - string → string (the default)
//   - int → int, int64 → int64
//   - float, float64, number → float64
//   - bool → bool
//   - time, datetime → time.Time
//   - decimal → decimal.Decimal
//
// Unknown types fall back to string and report a warning.
//
// # Issues
//
// Generation never stops at the first problem. Malformed routes are skipped
// with a critical issue, suspicious entries (unused parameter declarations,
// query names that collide with path parameters) report warnings, and the
// rest of the manifest still generates. GenerateResult carries the full
// issue list with per-severity counts; StrictMode turns any warning into a
// failed run.
//
// # Related Packages
//
//   - github.com/catenary/urltools/urlbuilder: the runtime the generated
//     helpers call into
//   - github.com/catenary/urltools/urlerrors: error types surfaced by the
//     generated helpers
package routegen
