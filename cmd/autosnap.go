package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type autosnapCmd struct {
	schedule string
}

func (*autosnapCmd) Name() string     { return "autosnap" }
func (*autosnapCmd) Synopsis() string { return "capture snapshots on a schedule" }
func (*autosnapCmd) Usage() string {
	return `bms autosnap [-schedule <cron spec>]

  Runs until interrupted and captures a snapshot of the books on a cron
  schedule, every day at closing time by default. The schedule accepts the
  five standard cron fields or descriptors like @daily or @every 1h.
`
}

func (c *autosnapCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.schedule, "schedule", "0 19 * * *", "Cron schedule of the captures")
}

func (c *autosnapCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return run(func(a *app) subcommands.ExitStatus {
		log := a.log.Named("autosnap")
		scheduler := cron.New()
		_, err := scheduler.AddFunc(c.schedule, func() {
			snap, err := a.session.Capture("Scheduled snapshot")
			if err != nil {
				log.Error("scheduled capture failed", zap.Error(err))
				return
			}
			fmt.Printf("Captured %s at %s.\n", snap.ID, snap.Timestamp)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid schedule %q: %v\n", c.schedule, err)
			return subcommands.ExitUsageError
		}
		scheduler.Start()
		fmt.Printf("Capturing snapshots on schedule %q, press Ctrl+C to stop.\n", c.schedule)
		<-ctx.Done()
		<-scheduler.Stop().Done()
		return subcommands.ExitSuccess
	})
}
