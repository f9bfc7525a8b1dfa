package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/folio/renderer"
)

type holdingCmd struct {
	assets bool
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "report the current holdings" }
func (*holdingCmd) Usage() string {
	return `folio holding [-a]

  Reports the open positions with their cost basis, market value and P&L,
  ordered by market value, followed by the cash position.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.assets, "a", false, "List the asset registry instead of the positions.")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.assets {
		printMarkdown(renderer.Assets(s.Ledger()))
	} else {
		printMarkdown(renderer.Holdings(s.Ledger()))
	}
	return subcommands.ExitSuccess
}
