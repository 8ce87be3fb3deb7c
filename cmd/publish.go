package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/biashara/logger"
	"github.com/etnz/biashara/renderer"
	"github.com/etnz/biashara/vault"
	"github.com/google/subcommands"
)

type publishCmd struct {
	sheetRange string
	header     bool
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "append the sales and expenses report to a Google spreadsheet" }

func (*publishCmd) Usage() string {
	return `bms publish [-range <sheet range>] [-header]

  Appends one row per sale and per expense, the same rows as the CSV report,
  to the spreadsheet GOOGLE_SHEET_ID using the service account credentials
  GOOGLE_SHEETS_CREDENTIALS_PATH.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sheetRange, "range", "Report!A1", "Sheet range the rows are appended to")
	f.BoolVar(&c.header, "header", false, "Append the header row first")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		if err := a.cfg.ValidateSheets(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		sheets, err := vault.NewSheets(ctx, a.cfg.Sheets.CredentialsPath, a.cfg.Sheets.SpreadsheetID, logger.Named(a.log, "sheets"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}

		rows := renderer.ReportRows(a.session.State())
		if c.header {
			rows = append([][]string{renderer.ReportHeader}, rows...)
		}
		if len(rows) == 0 {
			fmt.Println("No sales nor expenses to publish.")
			return subcommands.ExitSuccess
		}
		if err := sheets.AppendRows(ctx, c.sheetRange, rows); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Published %d rows to %s.\n", len(rows), c.sheetRange)
		return subcommands.ExitSuccess
	})
}
