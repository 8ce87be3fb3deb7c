package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/biashara/advisor"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the AI advisor for a long term strategic outlook" }
func (*adviseCmd) Usage() string {
	return `bms advise

  Asks Gemini for a 30-year strategic outlook of the shop, based on its
  net profit, inventory value and number of debts and loans.
  Requires GEMINI_API_KEY.
`
}

func (*adviseCmd) SetFlags(f *flag.FlagSet) {}

func (*adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(a *app) subcommands.ExitStatus {
		client, err := advisor.NewClient(ctx, a.cfg.AI.APIKey)
		if errors.Is(err, advisor.ErrNoAPIKey) {
			fmt.Fprintln(os.Stderr, advisor.APIKeyMissing)
			return subcommands.ExitFailure
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}

		g := &advisor.Gemini{Client: client, Model: a.cfg.AI.Model}
		text, err := advisor.Outlook(ctx, g, advisor.FactsOf(a.session.State()))
		if err != nil {
			a.log.Error("advisor failed", zap.Error(err))
			fmt.Fprintln(os.Stderr, text)
			return subcommands.ExitFailure
		}
		printMarkdown("# Strategic Outlook\n\n" + text + "\n")
		return subcommands.ExitSuccess
	})
}
