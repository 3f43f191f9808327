package cliutil

import (
	"fmt"
	"io"
	"os"
)

// ReadInput reads path, or stdin when path is StdinPath. Inputs larger than
// maxSize bytes are rejected; a non-positive maxSize disables the check.
func ReadInput(path string, stdin io.Reader, maxSize int64) ([]byte, error) {
	var r io.Reader
	if path == StdinPath {
		r = stdin
	} else {
		f, err := os.Open(path) //nolint:gosec // G304 - path is supplied by the user
		if err != nil {
			return nil, fmt.Errorf("cliutil: opening input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	if maxSize > 0 {
		r = io.LimitReader(r, maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cliutil: reading %s: %w", DisplayPath(path), err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, fmt.Errorf("cliutil: %s exceeds %d bytes", DisplayPath(path), maxSize)
	}
	return data, nil
}
