package models

// MExchangeRate is one currency row of the exchange-rate feed
type MExchangeRate struct {
	Code     string  `json:"Code"`
	Name     string  `json:"Name"`
	Buy      float64 `json:"Buy"`
	Sell     float64 `json:"Sell"`
	Transfer float64 `json:"Transfer"`
}

// MStockIndexes maps an index name to its (capitalized) upstream fields
type MStockIndexes map[string]map[string]any
