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

type itemCmd struct {
	name     string
	sku      string
	category string
	buying   moneyFlag
	selling  moneyFlag
	stock    int
}

func (*itemCmd) Name() string     { return "item" }
func (*itemCmd) Synopsis() string { return "add, edit, restock or list inventory items" }
func (*itemCmd) Usage() string {
	return `bms item list
bms item add -name <name> -buy <price> -sell <price> [-stock <n>] [-category <c>] [-sku <sku>]
bms item edit <item> [-name <name>] [-buy <price>] [-sell <price>] [-stock <n>] [-category <c>] [-sku <sku>]
bms item restock <item> -stock <n>
bms item delete <item>

  Manages the inventory. <item> is the id, the SKU or the name of an item.
  A SKU is generated when none is given. Past sales keep the name and prices
  the item had when it was sold.
`
}

func (c *itemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name")
	f.StringVar(&c.sku, "sku", "", "Stock keeping unit, unique")
	f.StringVar(&c.category, "category", "", "Item category, \""+biashara.DefaultCategory+"\" by default")
	f.Var(&c.buying, "buy", "Buying price per unit")
	f.Var(&c.selling, "sell", "Selling price per unit")
	f.IntVar(&c.stock, "stock", 0, "Units in stock, or units to add with restock")
}

func (c *itemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing action, one of list, add, edit, restock or delete")
		return subcommands.ExitUsageError
	}
	action, args := f.Arg(0), f.Args()[1:]
	if err := checkItemArgs(action, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return run(func(a *app) subcommands.ExitStatus {
		switch action {
		case "list":
			printMarkdown(renderer.TableMarkdown(renderer.InventoryTable(a.session.State())))
			return subcommands.ExitSuccess

		case "add":
			it := biashara.NewInventoryItem(c.name, c.buying.value, c.selling.value, c.stock, c.category)
			if c.sku != "" {
				it.SKU = c.sku
			}
			if status := a.update(biashara.AddItem(it)); status != subcommands.ExitSuccess {
				return status
			}
			fmt.Printf("Added %s (%s), %d in stock.\n", it.Name, it.SKU, it.Stock)
			return subcommands.ExitSuccess
		}

		it, err := findItem(a.session.State(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}

		switch action {
		case "edit":
			if isSet(f, "name") {
				it.Name = c.name
			}
			if isSet(f, "sku") {
				it.SKU = c.sku
			}
			if isSet(f, "category") {
				it.Category = c.category
			}
			if c.buying.set {
				it.BuyingPrice = c.buying.value
			}
			if c.selling.set {
				it.SellingPrice = c.selling.value
			}
			if isSet(f, "stock") {
				it.Stock = c.stock
			}
			if status := a.update(biashara.EditItem(it)); status != subcommands.ExitSuccess {
				return status
			}
			fmt.Printf("Updated %s (%s).\n", it.Name, it.SKU)

		case "restock":
			if status := a.update(biashara.RestockItem(it.ID, c.stock)); status != subcommands.ExitSuccess {
				return status
			}
			fmt.Printf("Restocked %s, %d in stock.\n", it.Name, it.Stock+c.stock)

		case "delete":
			if status := a.update(biashara.DeleteItem(it.ID)); status != subcommands.ExitSuccess {
				return status
			}
			fmt.Printf("Deleted %s (%s).\n", it.Name, it.SKU)
		}
		return subcommands.ExitSuccess
	})
}

// checkItemArgs checks the action first, then the arguments it takes.
func checkItemArgs(action string, args []string) error {
	switch action {
	case "list", "add":
		return nil
	case "edit", "restock", "delete":
		if len(args) != 1 {
			return fmt.Errorf("%s needs exactly one item", action)
		}
		return nil
	}
	return fmt.Errorf("unknown action %q, one of list, add, edit, restock or delete", action)
}
