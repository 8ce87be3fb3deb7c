package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/biashara"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the books" }
func (*queryCmd) Usage() string {
	return `bms query <jsonpath>

  Evaluates a JSONPath expression on the exported books and prints the
  result as JSON. For instance:

    bms query '$.inventory[?(@.stock < 5)].name'
    bms query '$.debts[?(@.status == "pending")].creditor'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query needs exactly one expression")
		return subcommands.ExitUsageError
	}
	return run(func(a *app) subcommands.ExitStatus {
		result, err := query(a.session.State(), f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	})
}

// query evaluates path on the JSON document of s.
func query(s biashara.State, path string) (any, error) {
	var buf bytes.Buffer
	if err := biashara.Export(&buf, s); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, err
	}
	result, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return result, nil
}
