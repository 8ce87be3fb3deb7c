package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/biashara"
	"github.com/etnz/biashara/renderer"
	"github.com/google/subcommands"
)

type loanCmd struct {
	amount moneyFlag
	rate   float64
	term   int
	kind   string
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "track money borrowed by the shop" }
func (*loanCmd) Usage() string {
	return `bms loan add -amount <principal> [-rate <percent>] [-term <months>] [-kind <kind>] <source>
bms loan pay -amount <amount> <loan id>

  Loans are money borrowed from a bank, a SACCO or a relative. A repayment
  never exceeds what remains due; the loan is cleared once the principal is
  repaid.
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.amount, "amount", "Principal borrowed, or amount repaid")
	f.Float64Var(&c.rate, "rate", 0, "Yearly interest rate in percent")
	f.IntVar(&c.term, "term", 12, "Term in months")
	f.StringVar(&c.kind, "kind", "", "Kind of loan, as in \"Bank\" or \"SACCO\"")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 || !c.amount.set {
		fmt.Fprintln(os.Stderr, "Error: missing action, -amount or argument")
		return subcommands.ExitUsageError
	}
	action, arg := f.Arg(0), strings.Join(f.Args()[1:], " ")

	return run(func(a *app) subcommands.ExitStatus {
		switch action {
		case "add":
			l := biashara.NewLoan(biashara.WithKind(c.kind, arg), c.amount.value, c.rate, c.term, Now())
			if status := a.update(biashara.AddLoan(l)); status != subcommands.ExitSuccess {
				return status
			}
			fmt.Printf("Recorded loan %s of %s from %s over %d months.\n", renderer.ShortID(l.ID), l.Principal.Display(), l.Source, l.TermMonths)
		case "pay":
			idOf := func(l biashara.Loan) string { return l.ID }
			l, err := findByID(a.session.State().Loans, idOf, "loan", arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
			if status := a.update(biashara.PayLoan(l.ID, c.amount.value)); status != subcommands.ExitSuccess {
				return status
			}
			l, _ = findByID(a.session.State().Loans, idOf, "loan", l.ID)
			fmt.Printf("Repaid %s of %s to %s, the loan is %s.\n", l.PaidAmount.Display(), l.Principal.Display(), l.Source, l.Status)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown action %q\n", action)
			return subcommands.ExitUsageError
		}
		return subcommands.ExitSuccess
	})
}
