package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/keycase/camel"
	"github.com/erraggy/keycase/internal/codec"
	"github.com/erraggy/keycase/keyerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentInput_ResolveContent(t *testing.T) {
	v, format, err := documentInput{Content: `{"user_id": 1}`}.resolve(0)
	require.NoError(t, err)
	assert.Equal(t, codec.FormatJSON, format)

	m, ok := v.(*camel.Mapping)
	require.True(t, ok)
	assert.Equal(t, []camel.Key{camel.TextKey("user_id")}, m.Keys())
}

func TestDocumentInput_ResolveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yml")
	require.NoError(t, os.WriteFile(path, []byte("{\"a\": 1}\n"), 0o600))

	_, format, err := documentInput{File: path}.resolve(0)
	require.NoError(t, err)
	assert.Equal(t, codec.FormatYAML, format, "extension wins over content sniffing")
}

func TestDocumentInput_ResolveNoneProvided(t *testing.T) {
	_, _, err := documentInput{}.resolve(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestDocumentInput_ResolveMultipleProvided(t *testing.T) {
	_, _, err := documentInput{File: "a.json", Content: "{}"}.resolve(0)
	assert.ErrorIs(t, err, keyerrors.ErrConfig)
}

func TestDocumentInput_ResolveStdinRejected(t *testing.T) {
	_, _, err := documentInput{File: "-"}.resolve(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}

func TestDocumentInput_ResolveFileNotFound(t *testing.T) {
	_, _, err := documentInput{File: "/nonexistent/path.yaml"}.resolve(0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDocumentInput_ResolveTooLarge(t *testing.T) {
	withConfig(t, &serverConfig{MaxDepth: camel.DefaultMaxDepth, MaxInlineSize: 8})

	_, _, err := documentInput{Content: `{"long_key": 1}`}.resolve(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 8 bytes")
}

func TestDocumentInput_ResolveInvalid(t *testing.T) {
	_, _, err := documentInput{Content: `{"a": [1, 2`}.resolve(0)
	assert.ErrorIs(t, err, keyerrors.ErrParse)
}
