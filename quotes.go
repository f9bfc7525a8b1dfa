package folio

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// QuoteSpec maps a ticker to the JSONPath expression that locates its
// current price inside a quote document. The feed's shape is the user's
// business; the engine only needs one number per ticker.
type QuoteSpec map[string]string

// ParseQuotes extracts current prices from a decoded JSON quote document.
// Tickers whose path fails or does not resolve to a number are reported in
// the joined error; the others are still returned.
func ParseQuotes(doc any, spec QuoteSpec) (map[string]decimal.Decimal, error) {
	prices := make(map[string]decimal.Decimal, len(spec))
	var errs error
	for ticker, path := range spec {
		jval, err := jsonpath.Get(path, doc)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("cannot resolve %q for %s: %w", path, ticker, err))
			continue
		}
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer: keep the first one if any.
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		val, ok := jval.(float64)
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("%q for %s is not a number: %v", path, ticker, jval))
			continue
		}
		prices[ticker] = decimal.NewFromFloat(val)
	}
	return prices, errs
}

// FetchQuotes downloads a JSON quote document and extracts prices per spec.
func FetchQuotes(client *http.Client, addr string, spec QuoteSpec) (map[string]decimal.Decimal, error) {
	var doc any
	if err := jwget(client, addr, &doc); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", addr, err)
	}
	return ParseQuotes(doc, spec)
}

// ApplyQuotes sets every fetched price on the session. Prices for tickers
// that were never registered are reported and skipped; like SetPrice, the
// update is not snapshotted.
func (s *Session) ApplyQuotes(prices map[string]decimal.Decimal) error {
	var errs error
	for ticker, price := range prices {
		if err := s.SetPrice(ticker, price); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
