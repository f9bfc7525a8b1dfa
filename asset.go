package folio

import (
	"encoding/json"
	"strings"
)

// AssetType classifies an asset into one of the supported categories.
type AssetType int

const (
	Stock AssetType = iota
	ETF
	MutualFund
	Crypto
	Bond
	Other
)

func (t AssetType) String() string {
	switch t {
	case Stock:
		return "Stock"
	case ETF:
		return "ETF"
	case MutualFund:
		return "MutualFund"
	case Crypto:
		return "Crypto"
	case Bond:
		return "Bond"
	default:
		return "Other"
	}
}

// ParseAssetType parses a string into an AssetType. The match is
// case-insensitive and accepts the historical aliases "mutual" and "mf".
// Anything unrecognized classifies as Other.
func ParseAssetType(s string) AssetType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock":
		return Stock
	case "etf":
		return ETF
	case "mutualfund", "mutual", "mf":
		return MutualFund
	case "crypto":
		return Crypto
	case "bond":
		return Bond
	default:
		return Other
	}
}

// MarshalJSON encodes the asset type as its name.
func (t AssetType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the asset type from its name.
func (t *AssetType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseAssetType(s)
	return nil
}

// Asset is the master record of a tradable instrument, keyed by ticker.
// An asset is created on first reference by a transaction or by explicit
// registration; re-registration overwrites; assets are never deleted.
type Asset struct {
	Ticker   string    `json:"ticker"`
	Name     string    `json:"name"`
	Type     AssetType `json:"type"`
	Currency string    `json:"currency"`
}

// MarshalJSON encodes the asset with a fixed field order.
func (a Asset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", a.Ticker)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("currency", a.Currency)
	return w.MarshalJSON()
}
