package mcpserver

import (
	"context"
	"errors"

	"github.com/erraggy/keycase/camel"
	"github.com/erraggy/keycase/internal/acronyms"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type camelizeKeyInput struct {
	Keys      []string          `json:"keys"                jsonschema:"snake_case keys to convert"`
	Camelback bool              `json:"camelback,omitempty" jsonschema:"Keep the first word as-is (camelBack) instead of CamelCase"`
	Acronyms  map[string]string `json:"acronyms,omitempty"  jsonschema:"Exact word to replacement overrides, for example id mapped to ID"`
}

type keyResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type camelizeKeyOutput struct {
	Mode string      `json:"mode"`
	Keys []keyResult `json:"keys,omitempty"`
}

func handleCamelizeKey(_ context.Context, _ *mcp.CallToolRequest, input camelizeKeyInput) (*mcp.CallToolResult, camelizeKeyOutput, error) {
	if len(input.Keys) == 0 {
		return errResult(errors.New("at least one key must be provided")), camelizeKeyOutput{}, nil
	}

	mode := camel.ModeCamelCase
	if input.Camelback {
		mode = camel.ModeCamelBack
	}
	table := acronyms.Merge(cfg.Acronyms, input.Acronyms)

	output := camelizeKeyOutput{
		Mode: mode.String(),
		Keys: makeSlice[keyResult](len(input.Keys)),
	}
	for _, k := range input.Keys {
		out, _ := camel.CamelizeKey(camel.TextKey(k), table, mode).Text()
		output.Keys = append(output.Keys, keyResult{Input: k, Output: out})
	}
	return nil, output, nil
}
