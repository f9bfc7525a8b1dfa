package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type priceCmd struct {
	ticker string
	price  string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "set the current price of an asset" }
func (*priceCmd) Usage() string {
	return `price -t <ticker> -p <price>

  Sets the current price per unit of a declared asset. The price feeds the
  market value and unrealized P&L columns; it is not a transaction.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.StringVar(&c.price, "p", "", "Current price per unit")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	price, err := parseAmount("price", c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := s.SetPrice(c.ticker, price); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting price: %v\n", err)
		return subcommands.ExitFailure
	}
	return SaveSession(s)
}
