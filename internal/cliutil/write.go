// Package cliutil provides input and output helpers for the keycase CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// StdinPath is the special path used to read from standard input.
const StdinPath = "-"

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// DisplayPath returns "<stdin>" for StdinPath and path otherwise.
func DisplayPath(path string) string {
	if path == StdinPath {
		return "<stdin>"
	}
	return path
}

// WriteFile writes data to path, refusing to follow a symlink so output
// cannot be redirected to an unintended location.
func WriteFile(path string, data []byte) error {
	info, err := os.Lstat(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return fmt.Errorf("cliutil: checking output path: %w", err)
	case info.Mode()&os.ModeSymlink != 0:
		return fmt.Errorf("cliutil: refusing to write to symlink: %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // G306 - output documents are not secret
		return fmt.Errorf("cliutil: writing %s: %w", path, err)
	}
	return nil
}
