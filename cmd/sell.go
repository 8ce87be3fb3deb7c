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

type sellCmd struct {
	quantity int
	price    moneyFlag
	receipt  bool
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of an inventory item" }
func (*sellCmd) Usage() string {
	return `bms sell [-q <n>] [-price <unit price>] [-receipt] <item>

  Records the sale of q units of an item, at its selling price unless -price
  is given. The sale is refused when there is not enough stock.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.quantity, "q", 1, "Quantity sold")
	f.Var(&c.price, "price", "Unit price, the item selling price by default")
	f.BoolVar(&c.receipt, "receipt", false, "Print the receipt of the sale")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: sell needs exactly one item")
		return subcommands.ExitUsageError
	}
	return run(func(a *app) subcommands.ExitStatus {
		it, err := findItem(a.session.State(), f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		sale := biashara.RecordSale(it.ID, c.quantity, Now())
		if c.price.set {
			sale = biashara.RecordSaleAt(it.ID, c.quantity, c.price.value, Now())
		}
		if status := a.update(sale); status != subcommands.ExitSuccess {
			return status
		}
		rec := a.session.State().Sales[0]
		fmt.Printf("Sold %d %s for %s (profit %s).\n", rec.Quantity, rec.ItemName, rec.TotalPrice.Display(), rec.Profit.Display())
		if c.receipt {
			fmt.Print(renderer.Receipt(rec))
		}
		return subcommands.ExitSuccess
	})
}
