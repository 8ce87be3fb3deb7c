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

type expenseCmd struct {
	amount   moneyFlag
	category string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money spent running the shop" }
func (*expenseCmd) Usage() string {
	return `bms expense -amount <amount> [-category <c>] <description>

  Records an expense, rent or transport for instance. Expenses are deducted
  from the gross profit to get the net profit.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.amount, "amount", "Amount spent")
	f.StringVar(&c.category, "category", "", "Expense category, \""+biashara.DefaultCategory+"\" by default")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	description := strings.Join(f.Args(), " ")
	if description == "" || !c.amount.set {
		fmt.Fprintln(os.Stderr, "Error: an expense needs a description and an -amount")
		return subcommands.ExitUsageError
	}
	return run(func(a *app) subcommands.ExitStatus {
		e := biashara.NewExpense(description, c.amount.value, c.category, Now())
		if status := a.update(biashara.AddExpense(e)); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Printf("Recorded expense %q of %s.\n", e.Description, e.Amount.Display())
		return subcommands.ExitSuccess
	})
}
