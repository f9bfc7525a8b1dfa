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

// appendTransaction loads the session, records the transaction and saves.
func appendTransaction(tx folio.Transaction) subcommands.ExitStatus {
	s, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := s.AddTransaction(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveSession(s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

// --- Buy Command ---

type buyCmd struct {
	date     string
	ticker   string
	quantity string
	price    string
	fees     string
	note     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase units to open or add to a position" }
func (*buyCmd) Usage() string {
	return `buy -t <ticker> -q <quantity> -p <price> [-f <fees>] [-d <date>] [-m <note>]

  Purchases units of an asset. The total cost, fees included, is debited
  from the cash position.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), today if omitted")
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.StringVar(&c.quantity, "q", "", "Number of units")
	f.StringVar(&c.price, "p", "", "Price per unit")
	f.StringVar(&c.fees, "f", "0", "Transaction fees")
	f.StringVar(&c.note, "m", "", "An optional rationale or note for the transaction")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := tradeTransaction(f, folio.Buy, c.date, c.ticker, c.quantity, c.price, c.fees, c.note)
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendTransaction(tx)
}

// tradeTransaction assembles a buy or sell from the shared flag set.
func tradeTransaction(f *flag.FlagSet, kind folio.TxType, date, ticker, quantity, price, fees, note string) (folio.Transaction, subcommands.ExitStatus) {
	if ticker == "" || quantity == "" || price == "" {
		f.Usage()
		return folio.Transaction{}, subcommands.ExitUsageError
	}
	day, err := parseDay(date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return folio.Transaction{}, subcommands.ExitUsageError
	}
	qty, err := parseAmount("quantity", quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return folio.Transaction{}, subcommands.ExitUsageError
	}
	p, err := parseAmount("price", price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return folio.Transaction{}, subcommands.ExitUsageError
	}
	fee, err := parseAmount("fees", fees)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return folio.Transaction{}, subcommands.ExitUsageError
	}
	if !qty.IsPositive() || p.IsNegative() || fee.IsNegative() {
		f.Usage()
		return folio.Transaction{}, subcommands.ExitUsageError
	}
	return folio.Transaction{
		Ticker:   ticker,
		Type:     kind,
		Date:     day,
		Quantity: qty,
		Price:    p,
		Fees:     fee,
		Note:     note,
	}, subcommands.ExitSuccess
}

// --- Sell Command ---

type sellCmd struct {
	date     string
	ticker   string
	quantity string
	price    string
	fees     string
	note     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell units to trim or close a position" }
func (*sellCmd) Usage() string {
	return `sell -t <ticker> -q <quantity> -p <price> [-f <fees>] [-d <date>] [-m <note>]

  Sells units of an asset. The proceeds net of fees are credited to the
  cash position and the realized gain is recorded.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), today if omitted")
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.StringVar(&c.quantity, "q", "", "Number of units")
	f.StringVar(&c.price, "p", "", "Price per unit")
	f.StringVar(&c.fees, "f", "0", "Transaction fees")
	f.StringVar(&c.note, "m", "", "An optional rationale or note for the transaction")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := tradeTransaction(f, folio.Sell, c.date, c.ticker, c.quantity, c.price, c.fees, c.note)
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendTransaction(tx)
}

// --- Dividend Command ---

type dividendCmd struct {
	date   string
	ticker string
	amount string
	note   string
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a dividend payment" }
func (*dividendCmd) Usage() string {
	return `dividend -t <ticker> -q <amount> [-d <date>] [-m <note>]

  Records a cash dividend paid by an asset. The amount is credited to the
  cash position and counted as realized gain.
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), today if omitted")
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.StringVar(&c.amount, "q", "", "Dividend amount")
	f.StringVar(&c.note, "m", "", "An optional rationale or note for the transaction")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount("amount", c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(folio.Transaction{
		Ticker:   c.ticker,
		Type:     folio.Dividend,
		Date:     day,
		Quantity: amount,
		Note:     c.note,
	})
}

// --- Cash Commands ---

// cashTransaction assembles a deposit, withdraw or fee on the cash ledger.
func cashTransaction(f *flag.FlagSet, kind folio.TxType, date, amount, note string) (folio.Transaction, subcommands.ExitStatus) {
	if amount == "" {
		f.Usage()
		return folio.Transaction{}, subcommands.ExitUsageError
	}
	day, err := parseDay(date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return folio.Transaction{}, subcommands.ExitUsageError
	}
	qty, err := parseAmount("amount", amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return folio.Transaction{}, subcommands.ExitUsageError
	}
	if !qty.IsPositive() {
		f.Usage()
		return folio.Transaction{}, subcommands.ExitUsageError
	}
	return folio.Transaction{
		Ticker:   folio.CashTicker,
		Type:     kind,
		Date:     day,
		Quantity: qty,
		Note:     note,
	}, subcommands.ExitSuccess
}

type depositCmd struct {
	date   string
	amount string
	note   string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add funds to the cash position" }
func (*depositCmd) Usage() string {
	return `deposit -q <amount> [-d <date>] [-m <note>]

  Adds external funds to the cash position.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), today if omitted")
	f.StringVar(&c.amount, "q", "", "Amount to deposit")
	f.StringVar(&c.note, "m", "", "An optional rationale or note for the transaction")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := cashTransaction(f, folio.Deposit, c.date, c.amount, c.note)
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendTransaction(tx)
}

type withdrawCmd struct {
	date   string
	amount string
	note   string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "remove funds from the cash position" }
func (*withdrawCmd) Usage() string {
	return `withdraw -q <amount> [-d <date>] [-m <note>]

  Removes funds from the cash position.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), today if omitted")
	f.StringVar(&c.amount, "q", "", "Amount to withdraw")
	f.StringVar(&c.note, "m", "", "An optional rationale or note for the transaction")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := cashTransaction(f, folio.Withdraw, c.date, c.amount, c.note)
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendTransaction(tx)
}

type feeCmd struct {
	date   string
	ticker string
	amount string
	note   string
}

func (*feeCmd) Name() string     { return "fee" }
func (*feeCmd) Synopsis() string { return "record an account or asset fee" }
func (*feeCmd) Usage() string {
	return `fee -q <amount> [-t <ticker>] [-d <date>] [-m <note>]

  Records a fee paid from the cash position, optionally attributed to an
  asset (a custody fee, for instance).
`
}

func (c *feeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), today if omitted")
	f.StringVar(&c.ticker, "t", folio.CashTicker, "Asset the fee relates to")
	f.StringVar(&c.amount, "q", "", "Fee amount")
	f.StringVar(&c.note, "m", "", "An optional rationale or note for the transaction")
}

func (c *feeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := cashTransaction(f, folio.Fees, c.date, c.amount, c.note)
	if status != subcommands.ExitSuccess {
		return status
	}
	tx.Ticker = c.ticker
	return appendTransaction(tx)
}
