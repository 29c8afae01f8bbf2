package routegen_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/catenary/urltools/routegen"
)

func Example() {
	manifest := []byte(`package: approutes
routes:
  - name: userProfile
    template: /users/:id/profile
    params:
      - name: id
        type: int64
`)

	result, err := routegen.New().GenerateBytes(manifest)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.PackageName, result.GeneratedRoutes, result.Success)
	fmt.Println(strings.Contains(string(result.Files[0].Content),
		"func UserProfileURL(id int64) (string, error)"))
	// Output:
	// approutes 1 true
	// true
}

func Example_issueReporting() {
	manifest := []byte(`routes:
  - name: badRoute
    template: "not a url"
  - name: ping
    template: /ping
`)

	result, err := routegen.New().GenerateBytes(manifest)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Success, result.CriticalCount, result.GeneratedRoutes)
	for _, issue := range result.Issues {
		if issue.Severity == routegen.SeverityCritical {
			fmt.Println(issue.Message)
		}
	}
	// Output:
	// false 1 1
	// invalid template "not a url": not a well-formed URI reference
}

func ExampleGenerateWithOptions() {
	result, err := routegen.GenerateWithOptions(
		routegen.WithManifest(routegen.Manifest{
			Routes: []routegen.Route{
				{Name: "health", Template: "/healthz"},
			},
		}),
		routegen.WithPackageName("approutes"),
		routegen.WithFileName("helpers_gen.go"),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Files[0].Name)
	fmt.Println(strings.Contains(string(result.Files[0].Content), "package approutes"))
	// Output:
	// helpers_gen.go
	// true
}
