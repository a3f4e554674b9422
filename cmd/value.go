package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/ticker"
	"github.com/etnz/ticker/renderer"
	"github.com/google/subcommands"
)

// defaultPositions is the portfolio valued when no position is given.
var defaultPositions = []string{
	"SHOP:TSE:10",
	"MSFT:NASDAQ:2",
	"BNS:TSE:100",
	"GOOGL:NASDAQ:30",
}

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "fetch live quotes and display the portfolio valuation" }
func (*valueCmd) Usage() string {
	return `tick value [TICKER:EXCHANGE:QUANTITY ...]

  Fetches the last traded price of every position, converts non-USD prices
  to USD, and displays the valuation table sorted by market value with the
  allocation of each position and the total portfolio value.

  Every position is fetched with a fresh randomized browser identity, one
  position after the other. Any fetch failure aborts the whole run.

Usage Examples:
# Value the default sample portfolio.
$ tick value

# Value your own positions.
$ tick value AAPL:NASDAQ:25 SHOP:TSE:10
`
}

func (*valueCmd) SetFlags(f *flag.FlagSet) {}

func (c *valueCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	args := f.Args()
	if len(args) == 0 {
		args = defaultPositions
	}

	portfolio := ticker.NewPortfolio()
	for _, arg := range args {
		symbol, exchange, quantity, err := parsePosition(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		security, err := ticker.NewSecurity(ctx, client, symbol, exchange)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error valuing %s:%s: %v\n", symbol, exchange, err)
			return subcommands.ExitFailure
		}
		portfolio.Add(security, quantity)
	}

	printMarkdown(renderer.SummaryMarkdown(ticker.NewSummary(portfolio)))
	return subcommands.ExitSuccess
}

// parsePosition parses a "TICKER:EXCHANGE:QUANTITY" argument.
func parsePosition(arg string) (symbol, exchange string, quantity int64, err error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return "", "", 0, fmt.Errorf("invalid position %q: want TICKER:EXCHANGE:QUANTITY", arg)
	}
	symbol, exchange = parts[0], parts[1]
	if symbol == "" || exchange == "" {
		return "", "", 0, fmt.Errorf("invalid position %q: empty ticker or exchange", arg)
	}
	quantity, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid quantity in %q: %v", arg, err)
	}
	return symbol, exchange, quantity, nil
}
