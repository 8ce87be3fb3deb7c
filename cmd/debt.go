package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/biashara"
	"github.com/etnz/biashara/date"
	"github.com/etnz/biashara/renderer"
	"github.com/google/subcommands"
)

type debtCmd struct {
	amount moneyFlag
	due    string
	kind   string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "track money owed to the shop" }
func (*debtCmd) Usage() string {
	return `bms debt add -amount <amount> [-due <date>] [-kind <kind>] <creditor>
bms debt pay -amount <amount> <debt id>

  Debts are items booked by customers or credit given to them.
  A payment never exceeds what remains due; the debt is paid once the
  whole amount is collected.
`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.amount, "amount", "Amount owed, or amount paid")
	f.StringVar(&c.due, "due", "", "Due date, YYYY-MM-DD")
	f.StringVar(&c.kind, "kind", "", "Kind of debt, as in \"Booked Item\"")
}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 || !c.amount.set {
		fmt.Fprintln(os.Stderr, "Error: missing action, -amount or argument")
		return subcommands.ExitUsageError
	}
	action, arg := f.Arg(0), strings.Join(f.Args()[1:], " ")

	due := ""
	if c.due != "" {
		d, err := date.Parse(c.due)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		due = d.String()
	}

	return run(func(a *app) subcommands.ExitStatus {
		switch action {
		case "add":
			d := biashara.NewDebt(biashara.WithKind(c.kind, arg), c.amount.value, due, Now())
			if status := a.update(biashara.AddDebt(d)); status != subcommands.ExitSuccess {
				return status
			}
			fmt.Printf("Recorded debt %s of %s owed by %s.\n", renderer.ShortID(d.ID), d.Amount.Display(), d.Creditor)
		case "pay":
			d, err := findByID(a.session.State().Debts, func(d biashara.Debt) string { return d.ID }, "debt", arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
			if status := a.update(biashara.PayDebt(d.ID, c.amount.value)); status != subcommands.ExitSuccess {
				return status
			}
			d, _ = findByID(a.session.State().Debts, func(d biashara.Debt) string { return d.ID }, "debt", d.ID)
			fmt.Printf("%s has paid %s of %s, the debt is %s.\n", d.Creditor, d.PaidAmount.Display(), d.Amount.Display(), d.Status)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown action %q\n", action)
			return subcommands.ExitUsageError
		}
		return subcommands.ExitSuccess
	})
}
