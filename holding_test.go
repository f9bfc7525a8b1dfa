package folio

import "testing"

func TestHoldings_Aggregation(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	l.Append(
		buyTx("AAPL", "2024-01-10", 10, 100, 0),
		buyTx("AAPL", "2024-02-10", 5, 120, 0),
		sellTx("AAPL", "2024-03-01", 12, 150, 0),
	)
	if err := l.SetPrice("AAPL", dec(140)); err != nil {
		t.Fatal(err)
	}

	hs := l.Holdings()
	if len(hs) != 1 {
		t.Fatalf("got %d holdings, want 1", len(hs))
	}
	h := hs[0]
	if !h.Quantity.Equal(dec(3)) {
		t.Errorf("quantity = %s, want 3", h.Quantity)
	}
	if !h.AvgCost.Equal(dec(120)) {
		t.Errorf("avg cost = %s, want 120", h.AvgCost)
	}
	if !h.MarketValue.Equal(dec(420)) {
		t.Errorf("market value = %s, want 420", h.MarketValue)
	}
	if !h.Unrealized.Equal(dec(60)) { // 420 - 360
		t.Errorf("unrealized = %s, want 60", h.Unrealized)
	}
	if !h.UnrealizedPct.Equal(dec(60).Div(dec(360)).Mul(hundred)) {
		t.Errorf("unrealized pct = %s", h.UnrealizedPct)
	}
}

func TestHoldings_SkipsEmptiedPositions(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	l.Append(
		buyTx("AAPL", "2024-01-10", 10, 100, 0),
		sellTx("AAPL", "2024-02-01", 10, 110, 0),
	)

	if hs := l.Holdings(); len(hs) != 0 {
		t.Errorf("got %d holdings for a fully sold position, want 0", len(hs))
	}
}

func TestHoldings_OrderByMarketValue(t *testing.T) {
	l := NewLedger()
	for _, ticker := range []string{"AAA", "BBB", "CCC"} {
		declare(l, ticker)
	}
	l.Append(
		buyTx("AAA", "2024-01-02", 1, 10, 0),
		buyTx("BBB", "2024-01-03", 1, 10, 0),
		buyTx("CCC", "2024-01-04", 1, 10, 0),
	)
	l.SetPrice("AAA", dec(5))
	l.SetPrice("BBB", dec(50))
	l.SetPrice("CCC", dec(50))

	hs := l.Holdings()
	got := make([]string, len(hs))
	for i, h := range hs {
		got[i] = h.Ticker
	}
	// BBB and CCC tie on market value; the stable sort keeps BBB first
	// because it entered the log first.
	want := []string{"BBB", "CCC", "AAA"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestHoldings_ZeroGuards(t *testing.T) {
	l := NewLedger()
	declare(l, "FREE")
	// A zero-price grant: quantity without cost.
	l.Append(buyTx("FREE", "2024-01-02", 10, 0, 0))

	hs := l.Holdings()
	if len(hs) != 1 {
		t.Fatalf("got %d holdings, want 1", len(hs))
	}
	h := hs[0]
	if !h.AvgCost.IsZero() {
		t.Errorf("avg cost = %s, want 0", h.AvgCost)
	}
	if !h.UnrealizedPct.IsZero() {
		t.Errorf("unrealized pct = %s, want 0 on zero cost basis", h.UnrealizedPct)
	}
}

func TestHoldings_Idempotent(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	declare(l, "MSFT")
	l.Append(
		buyTx("AAPL", "2024-01-02", 2, 100, 0),
		buyTx("MSFT", "2024-01-03", 2, 100, 0),
	)
	l.SetPrice("AAPL", dec(100))
	l.SetPrice("MSFT", dec(100))

	first, second := l.Holdings(), l.Holdings()
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Ticker != second[i].Ticker {
			t.Errorf("order differs at %d: %s vs %s", i, first[i].Ticker, second[i].Ticker)
		}
	}
}
