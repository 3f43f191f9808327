package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/keycase"
	"github.com/erraggy/keycase/cmd/keycase/commands"
	"github.com/erraggy/keycase/internal/cliutil"
	"github.com/erraggy/keycase/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("keycase v%s\n", keycase.Version())
		fmt.Printf("commit: %s\n", keycase.Commit())
		fmt.Printf("built: %s\n", keycase.BuildTime())
		fmt.Printf("go: %s\n", keycase.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "camel":
		err = commands.HandleCamel(os.Args[2:])
	case "camelback":
		err = commands.HandleCamelback(os.Args[2:])
	case "key":
		err = commands.HandleKey(os.Args[2:])
	case "mcp":
		err = runMCP()
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	cliutil.Writef(os.Stdout, `keycase - Convert snake_case keys of JSON and YAML documents

Usage:
  keycase <command> [options]

Commands:
  camel        Convert document keys to CamelCase (foo_bar -> FooBar)
  camelback    Convert document keys to camelBack (foo_bar -> fooBar)
  key          Convert individual keys given as arguments
  mcp          Start the MCP server on stdio
  version      Show version information
  help         Show this help message

Examples:
  keycase camel config.yaml
  keycase camelback -acronym id=ID -o out.json payload.json
  keycase key -camelback user_name

Run 'keycase <command> --help' for more information on a command.
`)
}
