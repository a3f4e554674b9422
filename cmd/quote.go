package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/ticker/renderer"
	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch and display the quote of a single security" }
func (*quoteCmd) Usage() string {
	return `tick quote TICKER:EXCHANGE

  Fetches the last traded price of one security and displays it, along with
  its USD equivalent when it trades in another currency.

Usage Examples:
$ tick quote SHOP:TSE
`
}

func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one TICKER:EXCHANGE argument.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	symbol, exchange, ok := strings.Cut(f.Arg(0), ":")
	if !ok || symbol == "" || exchange == "" {
		fmt.Fprintf(os.Stderr, "Error: invalid security %q: want TICKER:EXCHANGE.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	quote, err := client.PriceInformation(ctx, symbol, exchange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.QuoteMarkdown(quote))
	return subcommands.ExitSuccess
}
