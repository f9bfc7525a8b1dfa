package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/folio"
)

type declareCmd struct {
	ticker   string
	name     string
	typ      string
	currency string
}

func (*declareCmd) Name() string     { return "declare" }
func (*declareCmd) Synopsis() string { return "register an asset in the portfolio" }
func (*declareCmd) Usage() string {
	return `declare -t <ticker> [-n <name>] [-k <type>] [-c <currency>]

  Registers an asset so transactions and prices can refer to it. Declaring
  an existing ticker overwrites its registration. Transactions on an
  undeclared ticker auto-register it as a stock, so declare is only needed
  to set the name, type or currency.
`
}

func (c *declareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.StringVar(&c.name, "n", "", "Human readable name, defaults to the ticker")
	f.StringVar(&c.typ, "k", "STOCK", "Asset type (STOCK, ETF, MUTUALFUND, CRYPTO, BOND, OTHER)")
	f.StringVar(&c.currency, "c", "", "Asset currency, defaults to the session currency")
}

func (c *declareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	s, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := s.AddAsset(c.ticker, c.name, folio.ParseAssetType(c.typ), c.currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error declaring asset: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveSession(s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Declared %s\n", c.ticker)
	return subcommands.ExitSuccess
}
