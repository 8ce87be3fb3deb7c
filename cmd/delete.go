package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/biashara"
	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a sale, expense, debt, loan or equity record" }
func (*deleteCmd) Usage() string {
	return `bms delete <ledger> <id>

  Deletes a record. <ledger> is one of sales, expenses, debts, loans or
  equity, and <id> is the record id or a prefix of it.
  Deleting a sale does not give the units back to the stock.
  Use "bms item delete" for inventory items.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (*deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: delete needs a ledger and an id")
		return subcommands.ExitUsageError
	}
	ledger, ref := f.Arg(0), f.Arg(1)

	return run(func(a *app) subcommands.ExitStatus {
		update, err := deletion(a.session.State(), ledger, ref)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if status := a.update(update); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Printf("Deleted from %s.\n", ledger)
		return subcommands.ExitSuccess
	})
}

// deletion returns the update deleting the record of ledger matching ref.
func deletion(s biashara.State, ledger, ref string) (biashara.Update, error) {
	switch ledger {
	case "sales":
		r, err := findByID(s.Sales, func(r biashara.SaleRecord) string { return r.ID }, "sale", ref)
		return biashara.DeleteSale(r.ID), err
	case "expenses":
		r, err := findByID(s.Expenses, func(r biashara.Expense) string { return r.ID }, "expense", ref)
		return biashara.DeleteExpense(r.ID), err
	case "debts":
		r, err := findByID(s.Debts, func(r biashara.Debt) string { return r.ID }, "debt", ref)
		return biashara.DeleteDebt(r.ID), err
	case "loans":
		r, err := findByID(s.Loans, func(r biashara.Loan) string { return r.ID }, "loan", ref)
		return biashara.DeleteLoan(r.ID), err
	case "equity":
		r, err := findByID(s.Equity, func(r biashara.Equity) string { return r.ID }, "equity entry", ref)
		return biashara.DeleteEquity(r.ID), err
	default:
		return nil, fmt.Errorf("unknown ledger %q, want sales, expenses, debts, loans or equity", ledger)
	}
}
