package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/biashara"
	"github.com/google/subcommands"
)

type equityCmd struct {
	amount moneyFlag
	typ    string
}

func (*equityCmd) Name() string     { return "equity" }
func (*equityCmd) Synopsis() string { return "record an owner investment or drawal" }
func (*equityCmd) Usage() string {
	return `bms equity -amount <amount> [-type investment|drawal] <source>

  Records money the owner puts into the shop (investment) or takes out of
  it (drawal).
`
}

func (c *equityCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.amount, "amount", "Amount invested or drawn")
	f.StringVar(&c.typ, "type", "investment", "investment or drawal")
}

func (c *equityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	source := strings.Join(f.Args(), " ")
	if source == "" || !c.amount.set {
		fmt.Fprintln(os.Stderr, "Error: an equity entry needs a source and an -amount")
		return subcommands.ExitUsageError
	}
	typ, err := biashara.ParseEquityType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return run(func(a *app) subcommands.ExitStatus {
		e := biashara.NewEquity(source, c.amount.value, typ, Now())
		if status := a.update(biashara.AddEquity(e)); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Printf("Recorded %s of %s from %s.\n", e.Type, e.Amount.Display(), e.Source)
		return subcommands.ExitSuccess
	})
}
