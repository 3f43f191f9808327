// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes keycase conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/keycase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `keycase MCP server: converts the keys of JSON/YAML documents from snake_case to CamelCase or camelBack.

Configuration: defaults are configurable via KEYCASE_* environment variables set in your MCP client config.

Key settings:
- KEYCASE_ACRONYMS (default: none): default acronym table, e.g. "id=ID,url=URL"; tool input acronyms override it
- KEYCASE_MAX_DEPTH (default: 1000): maximum nesting depth of a document
- KEYCASE_MAX_INLINE_SIZE (default: 10MiB): maximum size of a document (inline or file)

Keys that collide after conversion keep the later value; the summary reports how many were overwritten.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "keycase", Version: keycase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "camel_keys",
		Description: "Convert every mapping key of a JSON or YAML document to CamelCase (\"foo_bar\" -> \"FooBar\", \"ns/sub_key\" -> \"Ns::SubKey\"). Values are never changed. Provide the document inline via content or as a file path. Use acronyms to force fixed casing for words, e.g. {\"id\": \"ID\"}. Output keeps the input format unless format is set.",
	}, handleCamelKeys)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "camelback_keys",
		Description: "Convert every mapping key of a JSON or YAML document to camelBack (\"foo_bar\" -> \"fooBar\"), the usual JSON API field style. The first word of each key is kept as-is. Provide the document inline via content or as a file path. Use acronyms to force fixed casing for words after the first, e.g. {\"id\": \"ID\"} turns \"widget_id\" into \"widgetID\".",
	}, handleCamelbackKeys)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "camelize_key",
		Description: "Convert individual snake_case keys to CamelCase, or camelBack with camelback=true. Useful to preview how field names will be renamed before converting a whole document.",
	}, handleCamelizeKey)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
