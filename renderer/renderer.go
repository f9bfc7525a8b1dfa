// Package renderer turns portfolio state into markdown reports. Every
// renderer is a pure function of the ledger: it writes a string and never
// mutates state.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/etnz/folio"
)

// Money formats an amount in the conventions of its currency, falling back
// to a plain two-decimal figure when the currency code is unknown.
func Money(amount decimal.Decimal, currency string) string {
	c := money.GetCurrency(currency)
	if c == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(c.Fraction)).Round(0).IntPart()
	return money.New(minor, c.Code).Display()
}

// Holdings renders the holding summaries as a markdown table followed by
// the cash line.
func Holdings(l *folio.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")

	hs := l.Holdings()
	if len(hs) == 0 {
		fmt.Fprintln(&b, "No open positions.")
	} else {
		fmt.Fprintln(&b, "| Ticker | Name | Qty | Avg Cost | Price | Value | Unrealized | % | Realized |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|---:|")
		for _, h := range hs {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s%% | %s |\n",
				h.Ticker,
				h.Name,
				h.Quantity.StringFixed(4),
				Money(h.AvgCost, h.Currency),
				Money(h.Price, h.Currency),
				Money(h.MarketValue, h.Currency),
				Money(h.Unrealized, h.Currency),
				h.UnrealizedPct.StringFixed(2),
				Money(h.Realized, h.Currency),
			)
		}
	}

	fmt.Fprintf(&b, "\nCash: %s\n", l.Balance().Cash.StringFixed(2))
	return b.String()
}

// Assets renders the full asset registry, marking the tickers currently
// held.
func Assets(l *folio.Ledger) string {
	b := l.Balance()

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Assets\n\n")
	fmt.Fprintln(&sb, "| Ticker | Held | Name | Type | Currency |")
	fmt.Fprintln(&sb, "|:---|:---:|:---|:---|:---|")
	for a := range l.AllAssets() {
		held := " "
		if qty, _ := b.Position(a.Ticker); qty.IsPositive() {
			held = "X"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n", a.Ticker, held, a.Name, a.Type, a.Currency)
	}
	return sb.String()
}

// Transactions renders the matching transactions as a markdown table. The
// leading index column is the transaction's position in the full log, the
// one RemoveTransaction takes.
func Transactions(l *folio.Ledger, filters ...func(folio.Transaction) bool) string {
	if len(filters) == 0 {
		filters = []func(folio.Transaction) bool{folio.AcceptAll}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	fmt.Fprintln(&b, "| # | Date | Type | Ticker | Qty | Price | Fees | Note |")
	fmt.Fprintln(&b, "|---:|:---|:---|:---|---:|---:|---:|:---|")
	n := 0
	for i, tx := range l.Transactions(filters...) {
		n++
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			i, tx.When(), tx.Type, tx.Ticker,
			tx.Quantity.String(), tx.Price.String(), tx.Fees.String(), tx.Note)
	}
	if n == 0 {
		return "# Transactions\n\nNo matching transactions.\n"
	}
	return b.String()
}

// Transaction renders a transaction to a one-line human summary.
func Transaction(tx folio.Transaction) string {
	switch tx.Type {
	case folio.Buy:
		return fmt.Sprintf("%s bought %s %s at %s", tx.When(), tx.Quantity, tx.Ticker, tx.Price)
	case folio.Sell:
		return fmt.Sprintf("%s sold %s %s at %s", tx.When(), tx.Quantity, tx.Ticker, tx.Price)
	case folio.Dividend:
		return fmt.Sprintf("%s dividend of %s from %s", tx.When(), tx.Quantity, tx.Ticker)
	case folio.Deposit:
		return fmt.Sprintf("%s deposited %s", tx.When(), tx.Quantity)
	case folio.Withdraw:
		return fmt.Sprintf("%s withdrew %s", tx.When(), tx.Quantity)
	case folio.Fees:
		return fmt.Sprintf("%s fees of %s on %s", tx.When(), tx.Quantity, tx.Ticker)
	default:
		return fmt.Sprintf("%s %s %s", tx.When(), tx.Type, tx.Ticker)
	}
}

// Summary renders the portfolio totals: market value, cost basis,
// unrealized and realized P&L, and the cash position.
func Summary(l *folio.Ledger) string {
	var value, cost, unrealized, realized decimal.Decimal
	for _, h := range l.Holdings() {
		value = value.Add(h.MarketValue)
		cost = cost.Add(h.CostBasis)
		unrealized = unrealized.Add(h.Unrealized)
	}
	for a := range l.AllAssets() {
		realized = realized.Add(l.Realized(a.Ticker))
	}
	cash := l.Balance().Cash

	var b strings.Builder
	fmt.Fprintf(&b, "# Summary\n\n")
	fmt.Fprintln(&b, "| | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Market value | %s |\n", value.StringFixed(2))
	fmt.Fprintf(&b, "| Cost basis | %s |\n", cost.StringFixed(2))
	fmt.Fprintf(&b, "| Unrealized P&L | %s |\n", unrealized.StringFixed(2))
	fmt.Fprintf(&b, "| Realized P&L | %s |\n", realized.StringFixed(2))
	fmt.Fprintf(&b, "| Cash | %s |\n", cash.StringFixed(2))
	fmt.Fprintf(&b, "| Total | %s |\n", value.Add(cash).StringFixed(2))
	return b.String()
}
