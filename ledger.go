package folio

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// Ledger is the persisted state of a portfolio: the asset registry, the
// current price table, the per-ticker realized P&L record, and the
// transaction log.
//
// In a Ledger transactions are always kept in chronological order: every
// mutation that adds a transaction re-sorts the log by date serial, with a
// stable sort so same-day transactions keep their insertion order.
type Ledger struct {
	assets       map[string]Asset
	prices       map[string]decimal.Decimal
	realized     map[string]decimal.Decimal
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		assets:       make(map[string]Asset),
		prices:       make(map[string]decimal.Decimal),
		realized:     make(map[string]decimal.Decimal),
		transactions: make([]Transaction, 0),
	}
}

// Asset returns the asset registered with this ticker.
func (l *Ledger) Asset(ticker string) (Asset, bool) {
	a, ok := l.assets[ticker]
	return a, ok
}

// Declare registers an asset, overwriting any previous registration for
// the same ticker.
func (l *Ledger) Declare(a Asset) {
	l.assets[a.Ticker] = a
}

// SetPrice records the current price per unit of a registered asset.
func (l *Ledger) SetPrice(ticker string, price decimal.Decimal) error {
	if _, ok := l.assets[ticker]; !ok {
		return fmt.Errorf("%w: %q, declare the asset first", ErrUnknownTicker, ticker)
	}
	l.prices[ticker] = price
	return nil
}

// Price returns the current price for a ticker, if one has been set.
func (l *Ledger) Price(ticker string) (decimal.Decimal, bool) {
	p, ok := l.prices[ticker]
	return p, ok
}

// Realized returns the persisted realized P&L recorded for a ticker.
func (l *Ledger) Realized(ticker string) decimal.Decimal {
	return l.realized[ticker]
}

// addRealized accumulates a realized P&L delta into the persisted record.
// Only Session.AddTransaction calls this; see the accumulation policy
// documented on Balance.
func (l *Ledger) addRealized(ticker string, delta decimal.Decimal) {
	l.realized[ticker] = l.realized[ticker].Add(delta)
}

// Append appends transactions to this ledger and maintains the
// chronological order of the log.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// RemoveAt removes the transaction at position i in the log.
func (l *Ledger) RemoveAt(i int) (Transaction, error) {
	if i < 0 || i >= len(l.transactions) {
		return Transaction{}, fmt.Errorf("%w: %d, have %d transactions", ErrIndexRange, i, len(l.transactions))
	}
	tx := l.transactions[i]
	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	return tx, nil
}

// Len returns the number of transactions in the log.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction, with its
// position, in stored (chronological) order. A transaction is yielded when
// any of the given filters accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// AllAssets iterates over registered assets in ticker order.
func (l *Ledger) AllAssets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		tickers := slices.Collect(maps.Keys(l.assets))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(l.assets[ticker]) {
				return
			}
		}
	}
}

// stableSort sorts the log by transaction date serial. The sort is stable:
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Serial() < l.transactions[j].Date.Serial()
	})
}
