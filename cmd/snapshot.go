package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/biashara"
	"github.com/etnz/biashara/renderer"
	"github.com/google/subcommands"
)

type snapshotCmd struct{}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "capture, list or restore snapshots of the books" }
func (*snapshotCmd) Usage() string {
	return fmt.Sprintf(`bms snapshot list
bms snapshot capture [<label>]
bms snapshot restore <snapshot id>

  Snapshots are labeled copies of the whole books. Only the %d most recent
  are kept. Restoring a snapshot replaces the current books.
`, biashara.MaxSnapshots)
}

func (*snapshotCmd) SetFlags(f *flag.FlagSet) {}

func (*snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	action := "list"
	if f.NArg() > 0 {
		action = f.Arg(0)
	}
	arg := strings.Join(f.Args()[min(1, f.NArg()):], " ")

	return run(func(a *app) subcommands.ExitStatus {
		switch action {
		case "list":
			printMarkdown(renderer.SnapshotsMarkdown(a.session.Snapshots()))
		case "capture":
			label := arg
			if label == "" {
				label = "Manual snapshot"
			}
			snap, err := a.session.Capture(label)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Printf("Captured %s %q.\n", snap.ID, snap.Label)
		case "restore":
			if arg == "" {
				fmt.Fprintln(os.Stderr, "Error: restore needs a snapshot id")
				return subcommands.ExitUsageError
			}
			snap, err := findByID(a.session.Snapshots(), func(s biashara.Snapshot) string { return s.ID }, "snapshot", arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
			if err := a.session.Restore(snap.ID); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Printf("Restored %s %q of %s.\n", snap.ID, snap.Label, renderer.Day(snap.Timestamp))
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown action %q\n", action)
			return subcommands.ExitUsageError
		}
		return subcommands.ExitSuccess
	})
}
