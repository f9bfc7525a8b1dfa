package folio

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CashTicker is the reserved ticker for pure cash movements: deposits,
// withdrawals and account-level fees that are not attached to an asset.
const CashTicker = "CASH"

// TxType identifies the kind of a transaction. It is a closed enumeration:
// values only enter the system through the constants below or ParseTxType.
type TxType int

const (
	Buy TxType = iota
	Sell
	Dividend
	Deposit
	Withdraw
	Fees
)

func (t TxType) String() string {
	switch t {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	case Dividend:
		return "DIVIDEND"
	case Deposit:
		return "DEPOSIT"
	case Withdraw:
		return "WITHDRAW"
	case Fees:
		return "FEES"
	default:
		return "?"
	}
}

// ParseTxType parses a string into a TxType, case-insensitively.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	case "DIVIDEND":
		return Dividend, nil
	case "DEPOSIT":
		return Deposit, nil
	case "WITHDRAW":
		return Withdraw, nil
	case "FEES":
		return Fees, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

// MarshalJSON encodes the type as its name.
func (t TxType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the type from its name.
func (t *TxType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseTxType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Transaction is an immutable fact recorded in the ledger. Quantity holds
// units for Buy/Sell and a plain amount for the cash kinds; Price is
// meaningful only for Buy/Sell.
type Transaction struct {
	Ticker   string          `json:"ticker"`
	Type     TxType          `json:"type"`
	Date     Date            `json:"date"`
	Quantity decimal.Decimal `json:"qty"`
	Price    decimal.Decimal `json:"price"`
	Fees     decimal.Decimal `json:"fees"`
	Note     string          `json:"note"`
}

// When returns the date on which the transaction occurred.
func (t Transaction) When() Date { return t.Date }

// IsCash reports whether the transaction targets the reserved cash ledger.
func (t Transaction) IsCash() bool { return t.Ticker == CashTicker }

// MarshalJSON encodes the transaction with a fixed field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", t.Ticker)
	w.Append("type", t.Type)
	w.Append("date", t.Date)
	w.Append("qty", t.Quantity)
	w.Append("price", t.Price)
	w.Append("fees", t.Fees)
	w.Optional("note", t.Note)
	return w.MarshalJSON()
}

// AcceptAll is a transaction filter that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByTicker returns a predicate that filters transactions by ticker.
func ByTicker(ticker string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Ticker == ticker }
}
