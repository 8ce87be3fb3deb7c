// Command bms keeps the books of a small shop: inventory, sales, expenses,
// debts, loans and equity, stored in a local data directory.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/biashara/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "bms")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// COMP_LINE is set by the shell when it asks for completions, and
	// COMP_INSTALL=1 installs them: both exit here.
	completion(commander).Complete("bms")

	flag.Parse()

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a command of c.
func registered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return
}

// completion describes the commands and their flags for the shell.
func completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flags(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		root.Sub[cmd.Name()] = &complete.Command{Flags: flags(fs), Args: args(cmd.Name())}
	})
	return root
}

func flags(fs *flag.FlagSet) map[string]complete.Predictor {
	m := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[f.Name] = predict.Nothing
			return
		}
		switch f.Name {
		case "data-dir":
			m[f.Name] = predict.Dirs("*")
		case "o", "env-file":
			m[f.Name] = predict.Files("*")
		case "format":
			m[f.Name] = predict.Set{"word", "csv"}
		case "type":
			m[f.Name] = predict.Set{"investment", "drawal"}
		case "ledger":
			m[f.Name] = predict.Set{"inventory", "sales", "expenses", "debts", "loans", "equity"}
		case "log-level":
			m[f.Name] = predict.Set{"debug", "info", "warn", "error"}
		default:
			m[f.Name] = predict.Something
		}
	})
	return m
}

// args predicts the positional arguments of a command.
func args(name string) complete.Predictor {
	switch name {
	case "item":
		return predict.Set{"list", "add", "edit", "restock", "delete"}
	case "debt", "loan":
		return predict.Set{"add", "pay"}
	case "snapshot":
		return predict.Set{"list", "capture", "restore"}
	case "ledger":
		return predict.Set{"inventory", "sales", "expenses", "debts", "loans", "equity"}
	case "delete":
		return predict.Set{"sales", "expenses", "debts", "loans", "equity"}
	case "import":
		return predict.Files("*.json")
	default:
		return predict.Nothing
	}
}
