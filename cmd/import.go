package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/biashara"
	"github.com/google/subcommands"
)

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the books with a backup" }
func (*importCmd) Usage() string {
	return `bms import [-y] <file>

  Replaces the whole books with a backup written by "bms export", or by an
  older version of the application. A snapshot of the current books is
  captured first so that the import can be undone with "bms snapshot restore".
  A malformed backup is refused and the books are left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import needs exactly one file")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()
	s, err := biashara.Import(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid backup %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm(os.Stdin, fmt.Sprintf("Replace the current books with the %d records of %s?", s.Len(), f.Arg(0))) {
		fmt.Println("Import cancelled.")
		return subcommands.ExitSuccess
	}

	return run(func(a *app) subcommands.ExitStatus {
		if _, err := a.session.Capture("Before import of " + f.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error capturing a snapshot: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := a.session.Replace(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Imported %d records.\n", s.Len())
		return subcommands.ExitSuccess
	})
}

// confirm asks a yes/no question on stdout and reads the answer from r.
func confirm(r io.Reader, question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, _ := bufio.NewReader(r).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
