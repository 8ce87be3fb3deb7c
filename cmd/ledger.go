package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/biashara/renderer"
	"github.com/google/subcommands"
)

type ledgerCmd struct {
	ids bool
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "list the records of a ledger" }
func (*ledgerCmd) Usage() string {
	return `bms ledger [-ids] <ledger>

  Lists the records of a ledger, newest first. <ledger> is one of
  ` + strings.Join(renderer.Ledgers, ", ") + `.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.ids, "ids", false, "Show the record ids used by pay, delete and receipt")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: ledger needs exactly one ledger name")
		return subcommands.ExitUsageError
	}
	return run(func(a *app) subcommands.ExitStatus {
		s := a.session.State()
		t, err := renderer.Ledger(f.Arg(0), s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if c.ids {
			t = renderer.WithIDs(t, f.Arg(0), s)
		}
		printMarkdown(renderer.TableMarkdown(t))
		return subcommands.ExitSuccess
	})
}
