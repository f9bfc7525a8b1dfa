package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
)

type txCmd struct {
	ticker string
	kind   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions in the portfolio" }
func (*txCmd) Usage() string {
	return `folio tx [-t <ticker>] [-k <type>]

  Lists transactions in chronological order. The leading column is the
  transaction index, the one "rm" takes.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Only transactions on this ticker.")
	f.StringVar(&c.kind, "k", "", "Only transactions of this type (BUY, SELL, ...).")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filter := folio.AcceptAll
	if c.ticker != "" {
		filter = folio.ByTicker(c.ticker)
	}
	if c.kind != "" {
		kind, err := folio.ParseTxType(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing type: %v\n", err)
			return subcommands.ExitUsageError
		}
		ticker := filter
		filter = func(tx folio.Transaction) bool { return ticker(tx) && tx.Type == kind }
	}

	printMarkdown(renderer.Transactions(s.Ledger(), filter))
	return subcommands.ExitSuccess
}
