package folio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Encode serializes the ledger to its textual portfolio format: a single
// JSON object with an `assets` list (ticker order), `prices` and
// `realized` maps (key order), and the ordered `txs` log. The output is
// deterministic: encoding the same state twice yields identical bytes.
func Encode(w io.Writer, l *Ledger) error {
	assets := slices.Collect(l.AllAssets())
	if assets == nil {
		assets = []Asset{}
	}

	var jw jsonObjectWriter
	jw.Append("assets", assets)
	jw.Append("prices", l.prices)
	jw.Append("realized", l.realized)
	jw.Append("txs", l.transactions)
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode portfolio: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("cannot encode portfolio: %w", err)
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// Decode parses the portfolio format back into a Ledger.
//
// The parser tolerates exactly the output of Encode; it is a private
// exchange format, not a general-purpose standard. Unknown or unreadable
// sections decode as empty, except `assets`: a document without a readable
// assets section fails with ErrParse, as does one that is not a JSON
// object at all.
func Decode(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	raw, ok := sections["assets"]
	if !ok {
		return nil, fmt.Errorf("%w: missing assets section", ErrParse)
	}
	var assets []Asset
	if err := json.Unmarshal(raw, &assets); err != nil {
		return nil, fmt.Errorf("%w: bad assets section: %v", ErrParse, err)
	}

	l := NewLedger()
	for _, a := range assets {
		if a.Ticker == "" {
			continue
		}
		l.Declare(a)
	}

	// Lenient sections: on error, keep the section empty.
	if raw, ok := sections["prices"]; ok {
		var prices map[string]decimal.Decimal
		if err := json.Unmarshal(raw, &prices); err == nil {
			for ticker, p := range prices {
				l.prices[ticker] = p
			}
		}
	}
	if raw, ok := sections["realized"]; ok {
		var realized map[string]decimal.Decimal
		if err := json.Unmarshal(raw, &realized); err == nil {
			for ticker, v := range realized {
				l.realized[ticker] = v
			}
		}
	}
	if raw, ok := sections["txs"]; ok {
		var txs []Transaction
		if err := json.Unmarshal(raw, &txs); err == nil {
			for _, tx := range txs {
				if tx.Ticker == "" {
					continue
				}
				l.Append(tx)
			}
		}
	}

	l.stableSort()
	return l, nil
}
