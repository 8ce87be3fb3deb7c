package cmd

import (
	"context"
	"flag"

	"github.com/etnz/biashara"
	"github.com/etnz/biashara/renderer"
	"github.com/google/subcommands"
)

type projectCmd struct {
	years   int
	monthly moneyFlag
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the growth of the net profit over the years" }
func (*projectCmd) Usage() string {
	return `bms project [-years <n>] [-monthly <amount>]

  Projects the value reached by reinvesting twelve times the monthly net
  profit every year at 10% yearly growth. The monthly net profit is the
  current net profit of the shop unless -monthly is given.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", biashara.ProjectionYears, "Number of years")
	f.Var(&c.monthly, "monthly", "Monthly net profit to project")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		monthly := biashara.NewStats(a.session.State()).NetProfit
		if c.monthly.set {
			monthly = c.monthly.value
		}
		printMarkdown(renderer.ProjectionMarkdown(monthly, biashara.Projection(monthly, c.years)))
		return subcommands.ExitSuccess
	})
}
