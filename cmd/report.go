package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/biashara/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	format string
	ledger string
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write a Word or CSV business report" }
func (*reportCmd) Usage() string {
	return `bms report [-format word|csv] [-ledger <ledger>] [-o <file>]

  Writes a report of the books:
    - word: the business report (summary, sales and expenses), or a single
      ledger with -ledger, as a Word document.
    - csv: every sale and expense as rows, to "-" for the standard output.

  The Word document is named after its title and the date by default.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "word", "Report format: word or csv")
	f.StringVar(&c.ledger, "ledger", "", "Only this ledger, in Word format")
	f.StringVar(&c.output, "o", "", "Output file")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		s, now := a.session.State(), Now()

		var write func(io.Writer) error
		name := c.output
		switch c.format {
		case "csv":
			write = func(w io.Writer) error { return renderer.CSV(w, s) }
			if name == "" {
				name = "-"
			}
		case "word":
			title := "Biashara Business Report"
			write = func(w io.Writer) error { return renderer.WordReport(w, s, now) }
			if c.ledger != "" {
				t, err := renderer.Ledger(c.ledger, s)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					return subcommands.ExitUsageError
				}
				title = t.Title
				write = func(w io.Writer) error { return renderer.WordLedger(w, t, now) }
			}
			if name == "" {
				name = renderer.WordFileName(title, now)
			}
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown format %q, want word or csv\n", c.format)
			return subcommands.ExitUsageError
		}

		if name == "-" {
			if err := write(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			return subcommands.ExitSuccess
		}
		if err := writeFile(name, write); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Report written to %s\n", filepath.Clean(name))
		return subcommands.ExitSuccess
	})
}

// writeFile creates name and writes it with write.
func writeFile(name string, write func(io.Writer) error) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
