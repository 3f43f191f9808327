package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/keycase/camel"
	"github.com/erraggy/keycase/internal/cliutil"
)

// KeyFlags contains flags for the key command
type KeyFlags struct {
	Camelback    bool
	Acronyms     acronymFlag
	AcronymsFile string
}

// SetupKeyFlags creates and configures a FlagSet for the key command.
func SetupKeyFlags() (*flag.FlagSet, *KeyFlags) {
	fs := flag.NewFlagSet("key", flag.ContinueOnError)
	flags := &KeyFlags{}

	fs.BoolVar(&flags.Camelback, "camelback", false, "keep the first word as-is (fooBar instead of FooBar)")
	fs.Var(&flags.Acronyms, "acronym", "acronym override as word=Replacement (repeatable)")
	fs.StringVar(&flags.AcronymsFile, "acronyms", "", "YAML or JSON file mapping words to replacements")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: keycase key [flags] <key>...\n\n")
		cliutil.Writef(fs.Output(), "Convert snake_case keys, one result per line.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  keycase key user_id              # UserId\n")
		cliutil.Writef(fs.Output(), "  keycase key -acronym id=ID user_id  # UserID\n")
		cliutil.Writef(fs.Output(), "  keycase key -camelback user_id    # userId\n")
		cliutil.Writef(fs.Output(), "  keycase key admin/user_name      # Admin::UserName\n")
	}

	return fs, flags
}

// HandleKey executes the key command
func HandleKey(args []string) error {
	return runKey(args, os.Stdout, os.Stderr)
}

func runKey(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupKeyFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("key command requires at least one key")
	}

	table, err := loadAcronyms(flags.AcronymsFile, flags.Acronyms)
	if err != nil {
		return err
	}

	convert := camel.Camelize
	if flags.Camelback {
		convert = camel.Camelback
	}
	for _, key := range fs.Args() {
		cliutil.Writef(stdout, "%s\n", convert(key, table))
	}
	return nil
}
