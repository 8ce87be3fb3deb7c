package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/biashara"
	"github.com/etnz/biashara/date"
	"github.com/etnz/biashara/renderer"
	"github.com/google/subcommands"
)

type trendCmd struct {
	days   int
	period string
	on     string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display the daily revenue and profit" }
func (*trendCmd) Usage() string {
	return `bms trend [-days <n> | -p <period>] [-d <date>]

  Displays the revenue and profit of each of the last days, the given date
  included. Days without sales show zero. With -p, the days run from the
  start of the week, month or year up to the given date.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 7, "Number of days")
	f.StringVar(&c.period, "p", "", "Period so far: week, month or year. Overrides -days.")
	f.StringVar(&c.on, "d", "", "Last day of the trend, today by default")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now := Now()
	on := date.Of(now)
	if c.on != "" {
		var err error
		if on, err = date.Parse(c.on); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		now = time.Date(on.Year(), on.Month(), on.Day(), 12, 0, 0, 0, now.Location())
	}
	if c.period != "" {
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
		c.days = date.UpTo(on, p).Len()
	}
	if c.days < 1 {
		fmt.Fprintln(os.Stderr, "Error: -days must be at least 1")
		return subcommands.ExitUsageError
	}
	return run(func(a *app) subcommands.ExitStatus {
		printMarkdown(renderer.TrendMarkdown(biashara.Trend(a.session.State(), now, c.days)))
		return subcommands.ExitSuccess
	})
}
