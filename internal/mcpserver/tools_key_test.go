package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCamelizeKey(t *testing.T) {
	defaultTestConfig(t)

	tests := []struct {
		name  string
		input camelizeKeyInput
		want  camelizeKeyOutput
	}{
		{
			name:  "camel case",
			input: camelizeKeyInput{Keys: []string{"foo_bar", "namespace/sub_key"}},
			want: camelizeKeyOutput{
				Mode: "CamelCase",
				Keys: []keyResult{
					{Input: "foo_bar", Output: "FooBar"},
					{Input: "namespace/sub_key", Output: "Namespace::SubKey"},
				},
			},
		},
		{
			name: "camel back with acronyms",
			input: camelizeKeyInput{
				Keys:      []string{"widget_id", "plain"},
				Camelback: true,
				Acronyms:  map[string]string{"id": "ID"},
			},
			want: camelizeKeyOutput{
				Mode: "CamelBack",
				Keys: []keyResult{
					{Input: "widget_id", Output: "widgetID"},
					{Input: "plain", Output: "plain"},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleCamelizeKey(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestHandleCamelizeKey_NoKeys(t *testing.T) {
	result, _, err := handleCamelizeKey(context.Background(), &mcp.CallToolRequest{}, camelizeKeyInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Equal(t, "at least one key must be provided", resultText(t, result))
}
