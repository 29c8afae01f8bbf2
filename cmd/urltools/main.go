package main

import (
	"fmt"
	"os"

	"github.com/catenary/urltools"
	"github.com/catenary/urltools/cmd/urltools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		if len(os.Args) > 2 && os.Args[2] == "--full" {
			fmt.Println(urltools.BuildInfo())
		} else {
			fmt.Printf("urltools v%s\n", urltools.Version())
		}
	case "help", "-h", "--help":
		printUsage()
	case "build":
		if err := commands.HandleBuild(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "flatten":
		if err := commands.HandleFlatten(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "routegen":
		if err := commands.HandleRoutegen(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough to be a likely typo.
func suggestCommand(input string) string {
	commands := []string{"build", "flatten", "routegen", "mcp", "version", "help"}

	best := ""
	bestDist := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`urltools - URL Building Tools

Usage:
  urltools <command> [options]

Commands:
  build       Build a URL from a template and parameters
  flatten     Flatten a parameter document into query parameters
  routegen    Generate typed Go URL helpers from a route manifest
  mcp         Run the MCP (Model Context Protocol) server over stdio
  version     Show version information ('version --full' for build details)
  help        Show this help message

Examples:
  urltools build -p id=42 -p tab=posts /users/:id
  urltools build --params filters.yaml --names snake /search
  urltools flatten --format json params.yaml
  urltools routegen -o ./routes routes.yaml
  cat params.json | urltools build --params - /reports/:year

Run 'urltools <command> --help' for more information on a command.`)
}
