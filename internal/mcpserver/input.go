package mcpserver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/erraggy/keycase/camel"
	"github.com/erraggy/keycase/internal/cliutil"
	"github.com/erraggy/keycase/internal/codec"
	"github.com/erraggy/keycase/internal/options"
)

// documentInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// resolve reads and decodes the document. The size limit applies to both
// inline and file content.
func (d documentInput) resolve(maxDepth int) (camel.Value, codec.Format, error) {
	if err := options.RequireOne("document", []string{"file", "content"}, d.File != "", d.Content != ""); err != nil {
		return nil, "", err
	}

	if d.Content != "" {
		if int64(len(d.Content)) > cfg.MaxInlineSize {
			return nil, "", fmt.Errorf("inline content exceeds %d bytes", cfg.MaxInlineSize)
		}
		return codec.Decode("content", []byte(d.Content), maxDepth)
	}

	// Stdin is the MCP transport.
	if strings.TrimSpace(d.File) == cliutil.StdinPath {
		return nil, "", errors.New("file must be a path, not stdin")
	}
	data, err := cliutil.ReadInput(d.File, nil, cfg.MaxInlineSize)
	if err != nil {
		return nil, "", err
	}
	v, format, err := codec.Decode(d.File, data, maxDepth)
	if err != nil {
		return nil, "", err
	}
	if byExt := codec.FormatFromPath(d.File); byExt != "" {
		format = byExt
	}
	return v, format, nil
}
