package folio

import (
	"github.com/shopspring/decimal"
)

// test helpers to build transactions from consts.

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func buyTx(ticker, day string, qty, price, fees float64) Transaction {
	return Transaction{Ticker: ticker, Type: Buy, Date: MustDate(day), Quantity: dec(qty), Price: dec(price), Fees: dec(fees)}
}

func sellTx(ticker, day string, qty, price, fees float64) Transaction {
	return Transaction{Ticker: ticker, Type: Sell, Date: MustDate(day), Quantity: dec(qty), Price: dec(price), Fees: dec(fees)}
}

func dividendTx(ticker, day string, amount float64) Transaction {
	return Transaction{Ticker: ticker, Type: Dividend, Date: MustDate(day), Quantity: dec(amount)}
}

func cashTx(kind TxType, day string, amount float64) Transaction {
	return Transaction{Ticker: CashTicker, Type: kind, Date: MustDate(day), Quantity: dec(amount)}
}

func feesTx(ticker, day string, amount float64) Transaction {
	return Transaction{Ticker: ticker, Type: Fees, Date: MustDate(day), Quantity: dec(amount)}
}

// declare registers a plain stock asset for tests.
func declare(l *Ledger, ticker string) {
	l.Declare(Asset{Ticker: ticker, Name: ticker, Type: Stock, Currency: "INR"})
}
