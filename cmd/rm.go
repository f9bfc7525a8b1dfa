package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a transaction by index" }
func (*rmCmd) Usage() string {
	return `folio rm <index>

  Removes the transaction at the given index in the chronological log, as
  printed by "tx". Removal corrects the log only; the recorded realized
  P&L is kept.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	i, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: index %q is not a number\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	s, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := s.RemoveTransaction(i); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveSession(s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Removed transaction %d\n", i)
	return subcommands.ExitSuccess
}
