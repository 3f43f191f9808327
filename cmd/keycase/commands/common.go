// Package commands provides CLI command handlers for keycase.
package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/erraggy/keycase/camel"
	"github.com/erraggy/keycase/internal/acronyms"
	"github.com/erraggy/keycase/internal/cliutil"
)

// acronymFlag collects repeated -acronym word=Replacement flags.
type acronymFlag []string

func (a *acronymFlag) String() string {
	if a == nil {
		return ""
	}
	return strings.Join(*a, ",")
}

func (a *acronymFlag) Set(value string) error {
	if _, _, err := acronyms.ParsePair(value); err != nil {
		return err
	}
	*a = append(*a, value)
	return nil
}

// loadAcronyms builds the acronym table from an optional file and the
// repeated pair flags. Pairs override entries from the file.
func loadAcronyms(file string, pairs []string) (camel.Acronyms, error) {
	var fromFile camel.Acronyms
	if file != "" {
		var err error
		fromFile, err = acronyms.Load(file)
		if err != nil {
			return nil, err
		}
	}
	fromFlags, err := acronyms.ParsePairs(pairs)
	if err != nil {
		return nil, err
	}
	return acronyms.Merge(fromFile, fromFlags), nil
}

// ValidateOutputPath checks that writing outputPath cannot clobber inputPath.
func ValidateOutputPath(outputPath, inputPath string) error {
	if inputPath == cliutil.StdinPath {
		return nil
	}
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	absInputPath, err := filepath.Abs(inputPath)
	if err != nil {
		return fmt.Errorf("invalid input path %s: %w", inputPath, err)
	}
	if absOutputPath == absInputPath {
		return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
	}
	return nil
}

// writeOutput writes data to outputPath, or to stdout when outputPath is empty.
func writeOutput(stdout io.Writer, outputPath string, data []byte) error {
	if outputPath == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	return cliutil.WriteFile(filepath.Clean(outputPath), data)
}
