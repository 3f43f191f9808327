package cliutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d keys", "Converted", 3)
	if got := buf.String(); got != "Converted: 3 keys" {
		t.Errorf("Writef() = %q, want %q", got, "Converted: 3 keys")
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write(p []byte) (int, error) {
	return 0, os.ErrClosed
}

func TestWritef_WriteError(t *testing.T) {
	// Should not panic
	Writef(errorWriter{}, "This will fail")
}

func TestDisplayPath(t *testing.T) {
	if got := DisplayPath(StdinPath); got != "<stdin>" {
		t.Errorf("DisplayPath(-) = %q", got)
	}
	if got := DisplayPath("a.json"); got != "a.json" {
		t.Errorf("DisplayPath(a.json) = %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := WriteFile(path, []byte("{}")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "{}" {
		t.Fatalf("unexpected file content %q (err %v)", data, err)
	}

	link := filepath.Join(dir, "link.json")
	if err := os.Symlink(path, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := WriteFile(link, []byte("x")); err == nil || !strings.Contains(err.Error(), "symlink") {
		t.Errorf("WriteFile(symlink) error = %v, want symlink refusal", err)
	}
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("file", func(t *testing.T) {
		data, err := ReadInput(path, nil, 0)
		if err != nil || string(data) != "a: 1\n" {
			t.Errorf("ReadInput() = %q, %v", data, err)
		}
	})

	t.Run("stdin", func(t *testing.T) {
		data, err := ReadInput(StdinPath, strings.NewReader("b: 2"), 100)
		if err != nil || string(data) != "b: 2" {
			t.Errorf("ReadInput(-) = %q, %v", data, err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		_, err := ReadInput(StdinPath, strings.NewReader("0123456789"), 5)
		if err == nil || !strings.Contains(err.Error(), "exceeds 5 bytes") {
			t.Errorf("ReadInput() error = %v, want size error", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadInput(filepath.Join(dir, "missing"), nil, 0)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("ReadInput() error = %v, want not-exist", err)
		}
	})
}
