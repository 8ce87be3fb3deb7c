package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/biashara"
	"github.com/etnz/biashara/renderer"
	"github.com/google/subcommands"
)

type receiptCmd struct{}

func (*receiptCmd) Name() string     { return "receipt" }
func (*receiptCmd) Synopsis() string { return "print the receipt of a sale" }
func (*receiptCmd) Usage() string {
	return `bms receipt [<sale id>]

  Prints the 58mm receipt of a sale, the latest one by default.
  A prefix of the sale id is enough.
`
}

func (*receiptCmd) SetFlags(f *flag.FlagSet) {}

func (*receiptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		sales := a.session.State().Sales
		if len(sales) == 0 {
			fmt.Fprintln(os.Stderr, "Error: no sales yet")
			return subcommands.ExitFailure
		}
		if f.NArg() == 0 {
			fmt.Print(renderer.Receipt(sales[0]))
			return subcommands.ExitSuccess
		}
		sale, err := findByID(sales, func(s biashara.SaleRecord) string { return s.ID }, "sale", f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Print(renderer.Receipt(sale))
		return subcommands.ExitSuccess
	})
}
