package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/biashara"
	"github.com/etnz/biashara/advisor"
	"github.com/google/subcommands"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }

func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }

func (*assistCmd) Usage() string {
	return `bms assist [<question>]

  Starts an interactive session with the AI assistant. The assistant asks a
  bookkeeper that reads the figures of the shop and a market analyst that
  searches the web. Type 'bye' to exit. Requires GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	return run(func(a *app) subcommands.ExitStatus {
		client, err := advisor.NewClient(ctx, a.cfg.AI.APIKey)
		if errors.Is(err, advisor.ErrNoAPIKey) {
			fmt.Fprintln(os.Stderr, advisor.APIKeyMissing)
			return subcommands.ExitFailure
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
			return subcommands.ExitFailure
		}

		model := a.cfg.AI.Model
		view := func() biashara.State { return a.session.State() }
		bookkeeper := advisor.NewBookkeeper(model, view)
		analyst := advisor.NewMarketAnalyst(model)
		for _, e := range []*advisor.Expert{bookkeeper, analyst} {
			e.Logger = a.log.Named("assist")
		}
		agent := advisor.NewAgent(os.Stdout, os.Stdin, model, bookkeeper, analyst)

		if err := agent.Run(ctx, client, prompts...); err != nil {
			fmt.Fprintln(os.Stderr, "Assistant failed:", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}
