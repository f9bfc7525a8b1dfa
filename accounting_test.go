package folio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBalance_FIFO(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	l.Append(
		buyTx("AAPL", "2024-01-10", 10, 100, 0),
		buyTx("AAPL", "2024-02-10", 5, 120, 0),
		sellTx("AAPL", "2024-03-01", 12, 150, 0),
	)

	b := l.Balance()

	// 10*(150-100) + 2*(150-120) = 560
	if got := b.Realized["AAPL"]; !got.Equal(dec(560)) {
		t.Errorf("realized = %s, want 560", got)
	}
	qty, cost := b.Position("AAPL")
	if !qty.Equal(dec(3)) {
		t.Errorf("remaining quantity = %s, want 3", qty)
	}
	if !cost.Equal(dec(360)) { // 3 units at unit cost 120
		t.Errorf("remaining cost = %s, want 360", cost)
	}
}

func TestBalance_PartialLotKeepsProportionalCost(t *testing.T) {
	l := NewLedger()
	declare(l, "VWRL")
	l.Append(
		buyTx("VWRL", "2024-01-02", 8, 50, 8), // total cost 408
		sellTx("VWRL", "2024-01-20", 2, 60, 0),
	)

	b := l.Balance()
	qty, cost := b.Position("VWRL")
	if !qty.Equal(dec(6)) {
		t.Errorf("remaining quantity = %s, want 6", qty)
	}
	if !cost.Equal(dec(306)) { // 408 * 6/8
		t.Errorf("remaining cost = %s, want 306", cost)
	}
	// realized: 2*60 - 408*2/8 = 120 - 102 = 18
	if got := b.Realized["VWRL"]; !got.Equal(dec(18)) {
		t.Errorf("realized = %s, want 18", got)
	}
}

func TestBalance_CashConservation(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	l.Append(
		cashTx(Deposit, "2024-01-01", 1000),
		buyTx("AAPL", "2024-01-02", 1, 100, 1),
		sellTx("AAPL", "2024-01-03", 1, 110, 1),
	)

	b := l.Balance()
	if !b.Cash.Equal(dec(1008)) { // 1000 - 101 + 109
		t.Errorf("cash = %s, want 1008", b.Cash)
	}
	// FIFO gain 110-101=9, then the fee is attributed a second time.
	if got := b.Realized["AAPL"]; !got.Equal(dec(8)) {
		t.Errorf("realized = %s, want 8", got)
	}
}

func TestBalance_OverSellFallback(t *testing.T) {
	l := NewLedger()
	declare(l, "GME")
	l.Append(sellTx("GME", "2024-01-05", 5, 10, 0))

	b := l.Balance()
	// No purchase history: the whole sale is pure proceeds, zero basis.
	if got := b.Realized["GME"]; !got.Equal(dec(50)) {
		t.Errorf("realized = %s, want 50", got)
	}
	if !b.Cash.Equal(dec(50)) {
		t.Errorf("cash = %s, want 50", b.Cash)
	}
	if qty, _ := b.Position("GME"); !qty.IsZero() {
		t.Errorf("remaining quantity = %s, want 0", qty)
	}
}

func TestBalance_OverSellPartialHistory(t *testing.T) {
	l := NewLedger()
	declare(l, "GME")
	l.Append(
		buyTx("GME", "2024-01-02", 3, 8, 0),
		sellTx("GME", "2024-01-05", 5, 10, 0),
	)

	b := l.Balance()
	// 3*(10-8) covered by the lot, the 2 extra units are pure proceeds.
	if got := b.Realized["GME"]; !got.Equal(dec(26)) {
		t.Errorf("realized = %s, want 26", got)
	}
}

func TestBalance_Dividend(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	l.Append(dividendTx("AAPL", "2024-04-01", 25))

	b := l.Balance()
	if !b.Cash.Equal(dec(25)) {
		t.Errorf("cash = %s, want 25", b.Cash)
	}
	if got := b.Realized["AAPL"]; !got.Equal(dec(25)) {
		t.Errorf("realized = %s, want 25", got)
	}
}

func TestBalance_CashLedgerRules(t *testing.T) {
	l := NewLedger()
	l.Append(
		cashTx(Deposit, "2024-01-01", 500),
		cashTx(Withdraw, "2024-01-02", 120),
		cashTx(Fees, "2024-01-03", 5),
	)

	if got := l.Balance().Cash; !got.Equal(dec(375)) {
		t.Errorf("cash = %s, want 375", got)
	}
}

func TestBalance_SkipsTradesOnCashTicker(t *testing.T) {
	// A hand-edited file may carry trades on the reserved ticker; the
	// replay skips them wholesale.
	l := NewLedger()
	l.Append(
		cashTx(Deposit, "2024-01-01", 100),
		buyTx(CashTicker, "2024-01-02", 10, 3, 0),
		sellTx(CashTicker, "2024-01-03", 10, 4, 0),
	)

	b := l.Balance()
	if !b.Cash.Equal(dec(100)) {
		t.Errorf("cash = %s, want 100", b.Cash)
	}
	if qty, _ := b.Position(CashTicker); !qty.IsZero() {
		t.Errorf("cash ticker must not hold lots, got %s", qty)
	}
}

func TestBalance_AssetFeesAndCashFlows(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	l.Append(
		cashTx(Deposit, "2024-01-01", 100),
		feesTx("AAPL", "2024-01-02", 7), // custody fee on the asset
		Transaction{Ticker: "AAPL", Type: Deposit, Date: MustDate("2024-01-03"), Quantity: dec(50)},
	)

	b := l.Balance()
	if !b.Cash.Equal(dec(93)) { // deposit on an asset ticker is a no-op
		t.Errorf("cash = %s, want 93", b.Cash)
	}
	if got, ok := b.Realized["AAPL"]; ok && !got.IsZero() {
		t.Errorf("fees must not touch realized, got %s", got)
	}
}

func TestBalance_SeedsFromPersistedRealized(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	l.realized["AAPL"] = dec(100)
	l.Append(dividendTx("AAPL", "2024-04-01", 25))

	if got := l.Balance().Realized["AAPL"]; !got.Equal(dec(125)) {
		t.Errorf("seeded realized = %s, want 125", got)
	}
	// The zero-seeded replay ignores the persisted record.
	if got := l.replay(false).Realized["AAPL"]; !got.Equal(dec(25)) {
		t.Errorf("zero-seeded realized = %s, want 25", got)
	}
	// And replaying never writes back.
	if got := l.Realized("AAPL"); !got.Equal(dec(100)) {
		t.Errorf("persisted realized = %s, want 100", got)
	}
}

func TestBalance_ReplayIsRepeatable(t *testing.T) {
	l := NewLedger()
	declare(l, "AAPL")
	l.Append(
		cashTx(Deposit, "2024-01-01", 1000),
		buyTx("AAPL", "2024-01-02", 4, 100, 2),
		sellTx("AAPL", "2024-01-10", 1, 110, 1),
	)

	first, second := l.Balance(), l.Balance()
	if !first.Cash.Equal(second.Cash) {
		t.Errorf("cash differs between replays: %s vs %s", first.Cash, second.Cash)
	}
	var _ decimal.Decimal = first.Cash
	for ticker, v := range first.Realized {
		if !second.Realized[ticker].Equal(v) {
			t.Errorf("realized[%s] differs between replays", ticker)
		}
	}
}
