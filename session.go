package folio

import (
	"bytes"
	"fmt"
	"iter"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assigned to assets auto-registered on
// first reference by a transaction, unless the session overrides it.
const DefaultCurrency = "INR"

// Session owns a Ledger for the lifetime of an interactive session and is
// the only mutation path into it. Every public operation either succeeds
// or fails with one of the sentinel errors, leaving the state unchanged.
//
// Mutations of the transaction log snapshot the state into the undo
// history first. Price updates and asset registrations are deliberately
// not snapshotted, preserving the historical behavior of the tool.
type Session struct {
	ledger   *Ledger
	undo     history
	currency string
}

// NewSession creates a session over an empty ledger. Assets
// auto-registered by transactions use the given currency, or
// DefaultCurrency when empty.
func NewSession(currency string) *Session {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Session{
		ledger:   NewLedger(),
		undo:     history{limit: historyLimit},
		currency: currency,
	}
}

// Ledger exposes the state for read-only uses such as rendering.
func (s *Session) Ledger() *Ledger { return s.ledger }

// AddAsset registers or overwrites an asset.
func (s *Session) AddAsset(ticker, name string, typ AssetType, currency string) error {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return fmt.Errorf("asset ticker is missing")
	}
	if name == "" {
		name = ticker
	}
	if currency == "" {
		currency = s.currency
	}
	s.ledger.Declare(Asset{Ticker: ticker, Name: name, Type: typ, Currency: currency})
	return nil
}

// SetPrice updates the current price of a registered asset. Unlike
// transaction mutations it is not snapshotted and cannot be undone.
func (s *Session) SetPrice(ticker string, price decimal.Decimal) error {
	return s.ledger.SetPrice(ticker, price)
}

// AddTransaction validates and appends a transaction, keeping the log in
// chronological order.
//
// A zero date fails with ErrInvalidDate. Buy, Sell and Dividend on the
// reserved CASH ticker are rejected: the cash ledger only moves through
// Deposit, Withdraw and Fees. An unknown asset ticker is auto-registered
// as a Stock in the session currency.
//
// When the transaction is a Sell or a Dividend, its contribution to
// realized P&L (for a Sell: the FIFO gain net of the fee attribution) is
// accumulated into the ledger's persisted realized record. This is the
// only place that record changes; replays never write back to it.
func (s *Session) AddTransaction(tx Transaction) error {
	if tx.Date.IsZero() {
		return fmt.Errorf("%w: transaction date is not set", ErrInvalidDate)
	}
	tx.Ticker = strings.TrimSpace(tx.Ticker)
	if tx.Ticker == "" {
		return fmt.Errorf("transaction ticker is missing")
	}
	if tx.IsCash() {
		switch tx.Type {
		case Buy, Sell, Dividend:
			return fmt.Errorf("%s is not meaningful on the %s ledger", tx.Type, CashTicker)
		}
	} else if _, ok := s.ledger.Asset(tx.Ticker); !ok {
		s.ledger.Declare(Asset{Ticker: tx.Ticker, Name: tx.Ticker, Type: Stock, Currency: s.currency})
	}

	s.snapshot()

	var before decimal.Decimal
	tracked := !tx.IsCash() && (tx.Type == Sell || tx.Type == Dividend)
	if tracked {
		before = s.ledger.replay(false).Realized[tx.Ticker]
	}
	s.ledger.Append(tx)
	if tracked {
		after := s.ledger.replay(false).Realized[tx.Ticker]
		s.ledger.addRealized(tx.Ticker, after.Sub(before))
	}
	return nil
}

// RemoveTransaction removes the transaction at position i (0-based) in the
// chronological log. The persisted realized record is not rewound: like
// the historical tool, removal corrects the log, not the P&L history; undo
// restores both.
func (s *Session) RemoveTransaction(i int) error {
	if i < 0 || i >= s.ledger.Len() {
		return fmt.Errorf("%w: %d, have %d transactions", ErrIndexRange, i, s.ledger.Len())
	}
	s.snapshot()
	_, err := s.ledger.RemoveAt(i)
	return err
}

// Holdings computes the current holding summaries.
func (s *Session) Holdings() []HoldingSummary { return s.ledger.Holdings() }

// Transactions iterates the chronological log, optionally restricted to
// the given tickers. The yielded index is the position RemoveTransaction
// takes.
func (s *Session) Transactions(tickers ...string) iter.Seq2[int, Transaction] {
	if len(tickers) == 0 {
		return s.ledger.Transactions(AcceptAll)
	}
	filters := make([]func(Transaction) bool, len(tickers))
	for i, ticker := range tickers {
		filters[i] = ByTicker(ticker)
	}
	return s.ledger.Transactions(filters...)
}

// Cash computes the current cash balance by replaying the log.
func (s *Session) Cash() decimal.Decimal { return s.ledger.Balance().Cash }

// snapshot serializes the state onto the undo history.
func (s *Session) snapshot() {
	var buf bytes.Buffer
	if err := Encode(&buf, s.ledger); err != nil {
		// Encoding our own state cannot fail short of a programming
		// error; skip the snapshot rather than block the mutation.
		return
	}
	s.undo.push(buf.String())
}

// Undo pops the most recent snapshot and replaces the live state
// wholesale. It reports false, leaving the state untouched, when the
// history is empty. There is no redo.
func (s *Session) Undo() bool {
	snapshot, ok := s.undo.pop()
	if !ok {
		return false
	}
	ledger, err := Decode(strings.NewReader(snapshot))
	if err != nil {
		return false
	}
	s.ledger = ledger
	return true
}

// Save writes the portfolio to a file. The state is encoded first, so a
// failure cannot leave a half-written session state behind; the file
// itself is written whole.
func (s *Session) Save(path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s.ledger); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// Load reads a portfolio file and replaces the live state. On failure the
// current state is kept unchanged. The undo history survives a load.
func (s *Session) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	ledger, err := Decode(f)
	if err != nil {
		return err
	}
	s.ledger = ledger
	return nil
}
