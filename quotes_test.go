package folio

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

const quoteDoc = `{
  "quotes": [
    {"symbol": "AAPL", "last": 195.5},
    {"symbol": "HDFC", "last": 1680.25},
    {"symbol": "VWRL", "last": "n/a"}
  ]
}`

func TestParseQuotes(t *testing.T) {
	var doc any
	if err := json.Unmarshal([]byte(quoteDoc), &doc); err != nil {
		t.Fatal(err)
	}

	spec := QuoteSpec{
		"AAPL": `$.quotes[?(@.symbol == "AAPL")].last`,
		"HDFC": `$.quotes[1].last`,
	}
	prices, err := ParseQuotes(doc, spec)
	if err != nil {
		t.Fatal(err)
	}
	if !prices["AAPL"].Equal(dec(195.5)) {
		t.Errorf("AAPL = %s, want 195.5", prices["AAPL"])
	}
	if !prices["HDFC"].Equal(dec(1680.25)) {
		t.Errorf("HDFC = %s, want 1680.25", prices["HDFC"])
	}
}

func TestParseQuotes_PartialFailure(t *testing.T) {
	var doc any
	if err := json.Unmarshal([]byte(quoteDoc), &doc); err != nil {
		t.Fatal(err)
	}

	spec := QuoteSpec{
		"AAPL": `$.quotes[0].last`,
		"VWRL": `$.quotes[2].last`, // resolves to a string, not a number
		"GONE": `$.nowhere.last`,
	}
	prices, err := ParseQuotes(doc, spec)
	if err == nil {
		t.Fatal("want an error for the unresolvable tickers")
	}
	if len(prices) != 1 || !prices["AAPL"].Equal(dec(195.5)) {
		t.Errorf("good tickers must survive partial failure: %v", prices)
	}
}

func TestFetchQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(quoteDoc))
	}))
	defer srv.Close()

	prices, err := FetchQuotes(srv.Client(), srv.URL, QuoteSpec{"AAPL": `$.quotes[0].last`})
	if err != nil {
		t.Fatal(err)
	}
	if !prices["AAPL"].Equal(dec(195.5)) {
		t.Errorf("AAPL = %s, want 195.5", prices["AAPL"])
	}
}

func TestSession_ApplyQuotes(t *testing.T) {
	s := NewSession("USD")
	if err := s.AddAsset("AAPL", "Apple", Stock, "USD"); err != nil {
		t.Fatal(err)
	}

	err := s.ApplyQuotes(map[string]decimal.Decimal{
		"AAPL": dec(195.5),
		"NOPE": dec(1),
	})
	if err == nil {
		t.Error("want an error for the unregistered ticker")
	}
	if p, ok := s.Ledger().Price("AAPL"); !ok || !p.Equal(dec(195.5)) {
		t.Errorf("AAPL price = %s, want 195.5", p)
	}
	if _, ok := s.Ledger().Price("NOPE"); ok {
		t.Error("unregistered ticker must not receive a price")
	}
}
