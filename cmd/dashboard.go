package cmd

import (
	"context"
	"flag"

	"github.com/etnz/biashara"
	"github.com/etnz/biashara/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	days int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the headline figures of the shop" }
func (*dashboardCmd) Usage() string {
	return `bms dashboard [-days <n>]

  Displays the net profit, revenue, expenses, margin, liabilities and
  inventory value, the sales of the last days and the low stock alerts.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 7, "Number of days of the sales trend")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		s := a.session.State()
		trend := biashara.Trend(s, Now(), c.days)
		printMarkdown(renderer.DashboardMarkdown(biashara.NewStats(s), trend, biashara.LowStockItems(s)))
		return subcommands.ExitSuccess
	})
}
