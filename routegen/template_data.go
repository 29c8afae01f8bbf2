package routegen

// fileData contains data for the generated file template
type fileData struct {
	// Source is the manifest path recorded in the file header (may be empty)
	Source      string
	PackageName string
	// NeedsTime and NeedsDecimal gate the corresponding imports
	NeedsTime    bool
	NeedsDecimal bool
	Routes       []routeData
}

// routeData contains data for a single route helper
type routeData struct {
	FuncName  string
	ConstName string
	Template  string
	// Doc is the cleaned manifest doc line (may be empty)
	Doc string
	// Args is the formatted argument list, e.g. "id int64, tab string"
	Args string
	// Entries are the parameter map literal entries, in signature order
	Entries []entryData

	// import needs observed while assembling the argument list
	needsTime    bool
	needsDecimal bool
}

// trackImport records the imports a parameter's Go type depends on.
func (rd *routeData) trackImport(goType string) {
	switch goType {
	case "time.Time":
		rd.needsTime = true
	case "decimal.Decimal":
		rd.needsDecimal = true
	}
}

// entryData is one key/value pair in the generated parameter map literal
type entryData struct {
	// Key is the quoted manifest parameter name
	Key string
	// Arg is the Go argument name the value comes from
	Arg string
}
