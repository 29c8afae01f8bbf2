package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/catenary/urltools/internal/cliutil"
	"github.com/catenary/urltools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: urltools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the MCP (Model Context Protocol) server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "Exposes build, flatten, and validate_template as MCP tools for\n")
		cliutil.Writef(fs.Output(), "AI agents and editors. The server reads requests from stdin and\n")
		cliutil.Writef(fs.Output(), "writes responses to stdout until the client disconnects.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  URLTOOLS_BUFFER_CAPACITY  byte ceiling for assembled URLs (default 4096)\n")
		cliutil.Writef(fs.Output(), "  URLTOOLS_TIME_LAYOUT      Go time layout for time values (default RFC 3339)\n")
		cliutil.Writef(fs.Output(), "  URLTOOLS_MAX_PARAMS_SIZE  maximum params document size in bytes (default 1048576)\n")
		cliutil.Writef(fs.Output(), "\nExample MCP client configuration:\n")
		cliutil.Writef(fs.Output(), "  {\"mcpServers\": {\"urltools\": {\"command\": \"urltools\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	return mcpserver.Run(context.Background())
}
