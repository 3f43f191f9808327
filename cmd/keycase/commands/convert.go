package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/keycase/camel"
	"github.com/erraggy/keycase/internal/cliutil"
	"github.com/erraggy/keycase/internal/codec"
)

// maxInputSize bounds documents read by the CLI.
const maxInputSize = 100 * 1024 * 1024

// ConvertFlags contains flags for the camel and camelback commands
type ConvertFlags struct {
	Acronyms     acronymFlag
	AcronymsFile string
	Format       string
	Output       string
	MaxDepth     int
	Quiet        bool
}

// SetupConvertFlags creates and configures a FlagSet for a conversion command.
// name is the command name ("camel" or "camelback").
func SetupConvertFlags(name string) (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.Var(&flags.Acronyms, "acronym", "acronym override as word=Replacement (repeatable)")
	fs.StringVar(&flags.AcronymsFile, "acronyms", "", "YAML or JSON file mapping words to replacements")
	fs.StringVar(&flags.Format, "f", "", "output format: json or yaml (default: input format)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: input format)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.IntVar(&flags.MaxDepth, "max-depth", camel.DefaultMaxDepth, "maximum nesting depth of the document")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	example := "FooBar"
	if name == "camelback" {
		example = "fooBar"
	}
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: keycase %s [flags] <file|->\n\n", name)
		cliutil.Writef(fs.Output(), "Convert every mapping key of a JSON or YAML document (foo_bar -> %s).\n\n", example)
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  keycase %s config.yaml\n", name)
		cliutil.Writef(fs.Output(), "  keycase %s -acronym id=ID -acronym url=URL -o out.json in.json\n", name)
		cliutil.Writef(fs.Output(), "  cat payload.json | keycase %s -q -format yaml -\n", name)
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Values are never changed, only mapping keys\n")
		cliutil.Writef(fs.Output(), "  - Keys that collide after conversion are overwritten by the later key\n")
	}

	return fs, flags
}

// HandleCamel executes the camel command
func HandleCamel(args []string) error {
	return runConvert("camel", camel.ModeCamelCase, args, os.Stdin, os.Stdout, os.Stderr)
}

// HandleCamelback executes the camelback command
func HandleCamelback(args []string) error {
	return runConvert("camelback", camel.ModeCamelBack, args, os.Stdin, os.Stdout, os.Stderr)
}

func runConvert(name string, mode camel.Mode, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupConvertFlags(name)
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%s command requires exactly one file path or '-' for stdin", name)
	}
	inputPath := fs.Arg(0)

	table, err := loadAcronyms(flags.AcronymsFile, flags.Acronyms)
	if err != nil {
		return err
	}

	data, err := cliutil.ReadInput(inputPath, stdin, maxInputSize)
	if err != nil {
		return err
	}
	doc, format, err := codec.Decode(cliutil.DisplayPath(inputPath), data, flags.MaxDepth)
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}
	if byExt := codec.FormatFromPath(inputPath); byExt != "" {
		format = byExt
	}
	if flags.Format != "" {
		if format, err = codec.ParseFormat(flags.Format); err != nil {
			return err
		}
	}

	c := &camel.Converter{Acronyms: table, MaxDepth: flags.MaxDepth}
	converted, err := c.Convert(doc, mode)
	if err != nil {
		return fmt.Errorf("converting keys: %w", err)
	}

	out, err := codec.Encode(converted, format)
	if err != nil {
		return err
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, inputPath); err != nil {
			return err
		}
	}
	if err := writeOutput(stdout, flags.Output, out); err != nil {
		return err
	}

	if !flags.Quiet {
		inKeys, outKeys := codec.CountKeys(doc), codec.CountKeys(converted)
		cliutil.Writef(stderr, "Converted %d keys from %s to %s\n", outKeys, cliutil.DisplayPath(inputPath), mode)
		if lost := inKeys - outKeys; lost > 0 {
			cliutil.Writef(stderr, "Warning: %d colliding keys were overwritten\n", lost)
		}
		if flags.Output != "" {
			cliutil.Writef(stderr, "Output written to: %s\n", flags.Output)
		}
	}
	return nil
}
