package routegen

import (
	"go/format"
	goparser "go/parser"
	"go/token"
	"strings"
	"testing"
)

// TestExecuteTemplate tests template execution with formatting.
func TestExecuteTemplate(t *testing.T) {
	data := fileData{
		PackageName: "testpkg",
		Routes: []routeData{
			{
				FuncName:  "PingURL",
				ConstName: "PingTemplate",
				Template:  "/ping",
			},
		},
	}

	content, err := executeTemplate("file.tmpl", data)
	if err != nil {
		t.Fatalf("executeTemplate failed: %v", err)
	}

	out := string(content)
	if !strings.Contains(out, "package testpkg") {
		t.Error("expected output to contain 'package testpkg'")
	}
	if !strings.Contains(out, `const PingTemplate = "/ping"`) {
		t.Error("expected output to contain the template constant")
	}
	if !strings.Contains(out, "func PingURL() (string, error)") {
		t.Error("expected output to contain the helper signature")
	}
	if !strings.Contains(out, "urlbuilder.Build(PingTemplate, nil)") {
		t.Error("expected a parameterless route to pass nil params")
	}
}

func TestExecuteTemplate_UnknownName(t *testing.T) {
	if _, err := executeTemplate("missing.tmpl", nil); err == nil {
		t.Fatal("expected an error for an unknown template name")
	}
}

// TestExecuteTemplate_OutputIsFormatted verifies the emitted source is
// syntactically valid and already gofmt-clean.
func TestExecuteTemplate_OutputIsFormatted(t *testing.T) {
	data := fileData{
		PackageName: "testpkg",
		NeedsTime:   true,
		Routes: []routeData{
			{
				FuncName:  "EventsURL",
				ConstName: "EventsTemplate",
				Template:  "/events/:since",
				Doc:       "Lists events recorded after a point in time.",
				Args:      "since time.Time",
				Entries:   []entryData{{Key: `"since"`, Arg: "since"}},
			},
		},
	}

	content, err := executeTemplate("file.tmpl", data)
	if err != nil {
		t.Fatalf("executeTemplate failed: %v", err)
	}

	fset := token.NewFileSet()
	if _, err := goparser.ParseFile(fset, "routes_gen.go", content, goparser.ParseComments); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, content)
	}

	formatted, err := format.Source(content)
	if err != nil {
		t.Fatalf("generated code does not format: %v", err)
	}
	if string(formatted) != string(content) {
		t.Errorf("generated code is not gofmt-clean:\n%s", content)
	}
}

// TestGeneratedOutputParses runs a full manifest through generation and
// parses every emitted file.
func TestGeneratedOutputParses(t *testing.T) {
	manifest := []byte(`package: approutes
routes:
  - name: userProfile
    template: /users/:id/profile
    doc: Links to a user's profile page.
    params:
      - name: id
        type: int64
    query:
      - name: tab
  - name: eventsSince
    template: /events/:since
    params:
      - name: since
        type: time
  - name: pay
    template: /pay/:amount
    params:
      - name: amount
        type: decimal
  - name: health
    template: /healthz
`)

	result, err := New().GenerateBytes(manifest)
	if err != nil {
		t.Fatalf("GenerateBytes failed: %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected 1 generated file, got %d", len(result.Files))
	}

	for _, file := range result.Files {
		fset := token.NewFileSet()
		if _, err := goparser.ParseFile(fset, file.Name, file.Content, goparser.ParseComments); err != nil {
			t.Errorf("%s does not parse: %v\n%s", file.Name, err, file.Content)
		}
	}
}
