// Package urlerrors provides structured error types for the urltools library.
//
// Import path: github.com/catenary/urltools/urlerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides two core error types:
//
//   - [TemplateError]: path templates that fail URI-reference well-formedness
//   - [OverflowError]: assembled output exceeding the fixed working buffer capacity
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidTemplate]: matches any [TemplateError]
//   - [ErrBufferOverflow]: matches any [OverflowError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	url, err := urlbuilder.Build("not a valid url", nil)
//	if errors.Is(err, urlerrors.ErrInvalidTemplate) {
//	    // Reject the template before retrying
//	}
//
// Extract error details with errors.As():
//
//	var ovErr *urlerrors.OverflowError
//	if errors.As(err, &ovErr) {
//	    fmt.Printf("need at least %d bytes, have %d\n", ovErr.Needed, ovErr.Capacity)
//	}
//
// A TemplateError is reported before any buffer write and an OverflowError is
// reported without partial output, so a failed build never yields a URL string.
package urlerrors
