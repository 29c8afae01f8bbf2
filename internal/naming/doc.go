// Package naming provides shared case conversion utilities for urltools packages.
//
// This internal package contains common string transformation functions used
// by multiple urltools packages including urlbuilder and routegen. Functions
// include ToPascalCase, ToCamelCase, ToSnakeCase, ToKebabCase, and ToTitleCase.
//
// These functions are used for:
//   - urlbuilder package: parameter key formatting and key name template funcs
//   - routegen package: Go identifier derivation from route and parameter names
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
