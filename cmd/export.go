package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/biashara"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a backup of the books" }
func (*exportCmd) Usage() string {
	return `bms export [-o <file>]

  Writes the whole books as a JSON document that "bms import" reads back.
  The default file name is Biashara_Backup_<date>.json, "-" writes to the
  standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		s := a.session.State()
		name := c.output
		if name == "" {
			name = "Biashara_Backup_" + Now().Format("2006-01-02") + ".json"
		}
		if name == "-" {
			if err := biashara.Export(os.Stdout, s); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			return subcommands.ExitSuccess
		}
		if err := writeFile(name, func(w io.Writer) error { return biashara.Export(w, s) }); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing backup %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Backup of %d records written to %s\n", s.Len(), name)
		return subcommands.ExitSuccess
	})
}
