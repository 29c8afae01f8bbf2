// This file implements manifest parameter type to Go type mapping for code
// generation.

package routegen

// goType maps a manifest parameter type to its Go type. The second return
// is false when the manifest type is unknown; callers fall back to string
// and report a warning.
func goType(manifestType string) (string, bool) {
	switch manifestType {
	case "", "string":
		return "string", true
	case "int", "integer":
		return "int", true
	case "int64":
		return "int64", true
	case "float", "float64", "number":
		return "float64", true
	case "bool", "boolean":
		return "bool", true
	case "time", "datetime", "date-time":
		return "time.Time", true
	case "decimal":
		return "decimal.Decimal", true
	}
	return "string", false
}
