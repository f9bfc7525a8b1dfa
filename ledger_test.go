package folio

import "testing"

func TestLedger_AppendKeepsChronologicalOrder(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	l.Append(buyTx("AAPL", "2024-03-01", 1, 100, 0))
	l.Append(buyTx("AAPL", "2024-01-01", 1, 100, 0))
	l.Append(buyTx("AAPL", "2024-02-01", 1, 100, 0))

	var days []string
	for _, tx := range l.Transactions(AcceptAll) {
		days = append(days, tx.When().String())
	}
	want := []string{"2024-01-01", "2024-02-01", "2024-03-01"}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("order = %v, want %v", days, want)
		}
	}
}

func TestLedger_SameDayKeepsInsertionOrder(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	l.Append(
		buyTx("AAPL", "2024-01-02", 1, 100, 0),
		sellTx("AAPL", "2024-01-02", 1, 110, 0),
	)
	l.Append(dividendTx("AAPL", "2024-01-02", 5))

	if l.transactions[0].Type != Buy || l.transactions[1].Type != Sell || l.transactions[2].Type != Dividend {
		t.Errorf("same-day transactions reordered: %v %v %v",
			l.transactions[0].Type, l.transactions[1].Type, l.transactions[2].Type)
	}
}

func TestLedger_TransactionsFilter(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	declare(l, "MSFT")
	l.Append(
		buyTx("AAPL", "2024-01-02", 1, 100, 0),
		buyTx("MSFT", "2024-01-03", 1, 200, 0),
		sellTx("AAPL", "2024-01-04", 1, 110, 0),
	)

	n := 0
	for i, tx := range l.Transactions(ByTicker("AAPL")) {
		n++
		if tx.Ticker != "AAPL" {
			t.Errorf("filter leaked %s at %d", tx.Ticker, i)
		}
	}
	if n != 2 {
		t.Errorf("matched %d transactions, want 2", n)
	}

	// The yielded index is the position in the full log, usable with
	// RemoveAt.
	for i, tx := range l.Transactions(ByTicker("MSFT")) {
		if i != 1 || tx.Ticker != "MSFT" {
			t.Errorf("index = %d for %s, want 1", i, tx.Ticker)
		}
	}
}

func TestLedger_RemoveAt(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	l.Append(
		buyTx("AAPL", "2024-01-02", 1, 100, 0),
		sellTx("AAPL", "2024-01-04", 1, 110, 0),
	)

	tx, err := l.RemoveAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if tx.Type != Buy {
		t.Errorf("removed %s, want BUY", tx.Type)
	}
	if l.Len() != 1 || l.transactions[0].Type != Sell {
		t.Errorf("unexpected log after removal")
	}
	if _, err := l.RemoveAt(5); err == nil {
		t.Error("out-of-range removal must fail")
	}
}
