package folio

import (
	"github.com/shopspring/decimal"
)

// Balance is the transient result of replaying the transaction log: the
// residual FIFO lot queue per ticker, the cash position, and a per-ticker
// realized P&L figure.
//
// The realized figure is seeded from the ledger's persisted record and
// accumulates the gains the replay itself books, so it is an audit total,
// not an increment: writing it back to the ledger would double-count. The
// persisted record is updated only when a sell or dividend enters through
// Session.AddTransaction. Balances are discarded after use.
type Balance struct {
	Cash     decimal.Decimal
	Realized map[string]decimal.Decimal

	lots  map[string]lots
	order []string // tickers in order of first lot activity
}

// Position returns the residual FIFO queue totals for a ticker: remaining
// quantity and remaining cost basis.
func (b *Balance) Position(ticker string) (quantity, cost decimal.Decimal) {
	q := b.lots[ticker]
	return q.totalQuantity(), q.totalCost()
}

// Balance replays the transaction log in stored order and returns the
// resulting cash position, lot inventories and audit realized P&L.
//
// Replay rules, one per transaction kind:
//   - on the CASH ticker, DEPOSIT adds the quantity to cash, WITHDRAW and
//     FEES subtract it; any other kind on CASH is skipped (the Session API
//     rejects them upfront, but hand-edited files stay loadable);
//   - BUY appends a lot costing qty*price+fees and pays it from cash;
//   - SELL credits qty*price-fees to cash, consumes lots FIFO, then
//     subtracts the fee a second time from the ticker's realized figure.
//     The fee was already netted out of cash via the proceeds; the double
//     attribution is deliberate and preserved for numeric parity with the
//     historical record;
//   - DIVIDEND credits the quantity to cash and to realized;
//   - FEES on an asset ticker debits cash only;
//   - DEPOSIT and WITHDRAW on an asset ticker have no effect.
func (l *Ledger) Balance() *Balance {
	return l.replay(true)
}

// replay runs the log. With seeded true the realized map starts from the
// persisted record; with seeded false it starts from zero, which is what
// Session uses to compute the contribution of a single new transaction.
func (l *Ledger) replay(seeded bool) *Balance {
	b := &Balance{
		Realized: make(map[string]decimal.Decimal),
		lots:     make(map[string]lots),
	}
	if seeded {
		for ticker, v := range l.realized {
			b.Realized[ticker] = v
		}
	}

	for _, tx := range l.transactions {
		if tx.IsCash() {
			switch tx.Type {
			case Deposit:
				b.Cash = b.Cash.Add(tx.Quantity)
			case Withdraw:
				b.Cash = b.Cash.Sub(tx.Quantity)
			case Fees:
				b.Cash = b.Cash.Sub(tx.Quantity)
			}
			continue
		}

		switch tx.Type {
		case Buy:
			totalCost := tx.Quantity.Mul(tx.Price).Add(tx.Fees)
			b.touch(tx.Ticker)
			b.lots[tx.Ticker] = append(b.lots[tx.Ticker], lot{date: tx.Date, quantity: tx.Quantity, cost: totalCost})
			b.Cash = b.Cash.Sub(totalCost)
		case Sell:
			proceeds := tx.Quantity.Mul(tx.Price).Sub(tx.Fees)
			b.Cash = b.Cash.Add(proceeds)
			b.touch(tx.Ticker)
			remaining, realized := b.lots[tx.Ticker].consume(tx.Quantity, tx.Price)
			b.lots[tx.Ticker] = remaining
			b.Realized[tx.Ticker] = b.Realized[tx.Ticker].Add(realized).Sub(tx.Fees)
		case Dividend:
			b.Cash = b.Cash.Add(tx.Quantity)
			b.Realized[tx.Ticker] = b.Realized[tx.Ticker].Add(tx.Quantity)
		case Fees:
			b.Cash = b.Cash.Sub(tx.Quantity)
		}
	}
	return b
}

// touch records the first lot activity of a ticker to keep a deterministic
// iteration order over the lot inventories.
func (b *Balance) touch(ticker string) {
	if _, ok := b.lots[ticker]; !ok {
		b.lots[ticker] = nil
		b.order = append(b.order, ticker)
	}
}
