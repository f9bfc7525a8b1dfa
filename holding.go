package folio

import (
	"sort"

	"github.com/shopspring/decimal"
)

// HoldingSummary is a read-only projection of a single held asset.
// Summaries are computed fresh on every request and never stored.
type HoldingSummary struct {
	Ticker        string
	Name          string
	Type          AssetType
	Currency      string
	Quantity      decimal.Decimal
	AvgCost       decimal.Decimal
	Price         decimal.Decimal
	MarketValue   decimal.Decimal
	CostBasis     decimal.Decimal
	Unrealized    decimal.Decimal
	UnrealizedPct decimal.Decimal
	Realized      decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Holdings aggregates the residual lot inventories into one summary per
// held ticker, ordered by descending market value. The sort is stable, so
// equal-value tickers keep their first-activity order. The realized column
// reads the persisted record, not the replay's audit figure.
//
// Holdings is a pure projection: repeated calls on an unchanged ledger
// yield identical results.
func (l *Ledger) Holdings() []HoldingSummary {
	b := l.replay(true)

	out := make([]HoldingSummary, 0, len(b.order))
	for _, ticker := range b.order {
		queue := b.lots[ticker]
		if len(queue) == 0 {
			continue
		}
		qty := queue.totalQuantity()
		cost := queue.totalCost()

		var avg decimal.Decimal
		if qty.IsPositive() {
			avg = cost.Div(qty)
		}
		price := l.prices[ticker] // zero when unset
		value := qty.Mul(price)
		unrealized := value.Sub(cost)
		var pct decimal.Decimal
		if cost.IsPositive() {
			pct = unrealized.Div(cost).Mul(hundred)
		}

		a := l.assets[ticker]
		out = append(out, HoldingSummary{
			Ticker:        ticker,
			Name:          a.Name,
			Type:          a.Type,
			Currency:      a.Currency,
			Quantity:      qty,
			AvgCost:       avg,
			Price:         price,
			MarketValue:   value,
			CostBasis:     cost,
			Unrealized:    unrealized,
			UnrealizedPct: pct,
			Realized:      l.realized[ticker],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MarketValue.GreaterThan(out[j].MarketValue)
	})
	return out
}
