package folio

import (
	"github.com/shopspring/decimal"
)

// lot represents a single purchase parcel of an asset, used for FIFO cost
// basis calculations. Cost is the total remaining cost of the lot,
// including the fees attributed at purchase.
type lot struct {
	date     Date
	quantity decimal.Decimal
	cost     decimal.Decimal
}

type lots []lot

// consume removes quantityToSell from the front of the queue (FIFO) and
// returns the remaining queue together with the realized gain relative to
// sellPrice. A partially consumed lot keeps a proportional share of its
// cost; a fully consumed lot leaves the queue. If the queue runs out
// before the quantity is covered, the excess is booked as pure proceeds
// with zero cost basis: a fallback for missing purchase history, not a
// short-sale model.
func (l lots) consume(quantityToSell, sellPrice decimal.Decimal) (lots, decimal.Decimal) {
	var realized decimal.Decimal
	for len(l) > 0 && quantityToSell.IsPositive() {
		front := l[0]
		if front.quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot
			costOfSoldPortion := front.cost.Mul(quantityToSell).Div(front.quantity)
			realized = realized.Add(quantityToSell.Mul(sellPrice).Sub(costOfSoldPortion))
			front.quantity = front.quantity.Sub(quantityToSell)
			front.cost = front.cost.Sub(costOfSoldPortion)
			l[0] = front
			return l, realized
		}
		// Full sale of this lot
		realized = realized.Add(front.quantity.Mul(sellPrice).Sub(front.cost))
		quantityToSell = quantityToSell.Sub(front.quantity)
		l = l[1:]
	}
	if quantityToSell.IsPositive() {
		realized = realized.Add(quantityToSell.Mul(sellPrice))
	}
	return l, realized
}

// totalQuantity sums the remaining quantity across all lots.
func (l lots) totalQuantity() decimal.Decimal {
	var q decimal.Decimal
	for _, current := range l {
		q = q.Add(current.quantity)
	}
	return q
}

// totalCost sums the remaining cost across all lots.
func (l lots) totalCost() decimal.Decimal {
	var c decimal.Decimal
	for _, current := range l {
		c = c.Add(current.cost)
	}
	return c
}
