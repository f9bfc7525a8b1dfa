package folio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// this file contains the one-way export formats. Exports are renderings of
// the computed portfolio state; they are not meant to round-trip.

// ExportCSV writes the holding summaries followed by the cash balance in
// CSV form. Quantities keep four decimals, monetary columns two.
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	header := []string{"Ticker", "Name", "Type", "Currency", "Qty", "AvgCost", "Price", "Value", "Cost", "Unreal", "Pct", "Realized"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, h := range l.Holdings() {
		record := []string{
			h.Ticker,
			h.Name,
			h.Type.String(),
			h.Currency,
			h.Quantity.StringFixed(4),
			h.AvgCost.StringFixed(2),
			h.Price.StringFixed(2),
			h.MarketValue.StringFixed(2),
			h.CostBasis.StringFixed(2),
			h.Unrealized.StringFixed(2),
			h.UnrealizedPct.StringFixed(2),
			h.Realized.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nCash,%s\n", l.Balance().Cash.StringFixed(2))
	return err
}

// ExportCSV writes the CSV export to a file.
func (s *Session) ExportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	if err := ExportCSV(f, s.ledger); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
