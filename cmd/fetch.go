package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/etnz/folio"
)

type fetchCmd struct {
	url   string
	specs specFlags
}

// specFlags collects repeated -q ticker=jsonpath mappings.
type specFlags []string

func (s *specFlags) String() string { return strings.Join(*s, ", ") }
func (s *specFlags) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch current prices from a JSON quote feed" }
func (*fetchCmd) Usage() string {
	return `fetch -u <url> -q <ticker>=<jsonpath> [-q ...]

  Downloads a JSON document and extracts one price per ticker using a
  JSONPath expression, then records the prices.

Usage Examples:
# Reads AAPL's last price out of a quotes array.
$ folio fetch -u https://feed.example/quotes -q 'AAPL=$.quotes[0].last'

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "u", "", "URL of the JSON quote document")
	f.Var(&c.specs, "q", "ticker=jsonpath mapping, repeatable")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" || len(c.specs) == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	spec := make(folio.QuoteSpec, len(c.specs))
	for _, mapping := range c.specs {
		ticker, path, ok := strings.Cut(mapping, "=")
		if !ok || ticker == "" || path == "" {
			fmt.Fprintf(os.Stderr, "Error: bad mapping %q, want ticker=jsonpath\n", mapping)
			return subcommands.ExitUsageError
		}
		spec[ticker] = path
	}

	client := &http.Client{Timeout: 30 * time.Second}
	prices, err := folio.FetchQuotes(client, c.url, spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning, some quotes failed: %v\n", err)
	}
	if len(prices) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no quote could be fetched")
		return subcommands.ExitFailure
	}

	s, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := s.ApplyQuotes(prices); err != nil {
		fmt.Fprintf(os.Stderr, "Warning, some prices were skipped: %v\n", err)
	}
	if status := SaveSession(s); status != subcommands.ExitSuccess {
		return status
	}
	for ticker, price := range prices {
		fmt.Printf("%s: %s\n", ticker, price)
	}
	return subcommands.ExitSuccess
}
