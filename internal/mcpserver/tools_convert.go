package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/keycase/camel"
	"github.com/erraggy/keycase/internal/acronyms"
	"github.com/erraggy/keycase/internal/codec"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Document documentInput     `json:"document"            jsonschema:"The JSON or YAML document whose keys are converted"`
	Acronyms map[string]string `json:"acronyms,omitempty"  jsonschema:"Exact word to replacement overrides, for example id mapped to ID"`
	Format   string            `json:"format,omitempty"    jsonschema:"Output format: json or yaml (default: same as input)"`
	MaxDepth int               `json:"max_depth,omitempty" jsonschema:"Maximum nesting depth, at most the server setting (default: server setting)"`
}

type convertOutput struct {
	Format   string `json:"format"`
	KeyCount int    `json:"key_count"`
	Summary  string `json:"summary"`
	Document string `json:"document"`
}

func handleCamelKeys(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	return convertDocument(input, camel.ModeCamelCase)
}

func handleCamelbackKeys(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	return convertDocument(input, camel.ModeCamelBack)
}

func convertDocument(input convertInput, mode camel.Mode) (*mcp.CallToolResult, convertOutput, error) {
	// The server setting is an upper bound; clients may only lower it.
	maxDepth := cfg.MaxDepth
	if input.MaxDepth > 0 {
		maxDepth = min(input.MaxDepth, cfg.MaxDepth)
	}

	doc, format, err := input.Document.resolve(maxDepth)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	if input.Format != "" {
		format, err = codec.ParseFormat(input.Format)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
	}

	c := &camel.Converter{
		Acronyms: acronyms.Merge(cfg.Acronyms, input.Acronyms),
		MaxDepth: maxDepth,
	}
	converted, err := c.Convert(doc, mode)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	data, err := codec.Encode(converted, format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	inKeys := codec.CountKeys(doc)
	outKeys := codec.CountKeys(converted)
	summary := fmt.Sprintf("Converted %d keys to %s.", outKeys, mode)
	if lost := inKeys - outKeys; lost > 0 {
		summary = fmt.Sprintf("Converted %d keys to %s; %d colliding keys were overwritten.", outKeys, mode, lost)
	}

	return nil, convertOutput{
		Format:   string(format),
		KeyCount: outKeys,
		Summary:  summary,
		Document: string(data),
	}, nil
}
