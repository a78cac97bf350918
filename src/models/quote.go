package models

// MQuoteSession carries the artifacts scraped from the upstream landing page.
// Missing pieces are empty strings; the locale defaults to vi-VN.
type MQuoteSession struct {
	SessionID        string
	AntiForgeryToken string
	Locale           string
}

// MRawStockPayload is the untyped trading-data object as returned upstream
type MRawStockPayload map[string]any

// MCompanyInfo is the optional enrichment found by the company search
type MCompanyInfo struct {
	Code string
	Name string
	URL  string
}

// MNormalizedQuote is the stable public shape of a stock quote.
type MNormalizedQuote struct {
	Info    MQuoteInfo        `json:"Info"`
	Prices  MQuotePrices      `json:"Prices"`
	Changes MQuoteChanges     `json:"Changes"`
	Charts  map[string]string `json:"Charts"`
}

type MQuoteInfo struct {
	Code    string       `json:"Code"`
	Name    string       `json:"Name"`
	Date    string       `json:"Date"`
	Volume  string       `json:"Volume"`
	Capital string       `json:"Capital"`
	Shares  string       `json:"Shares"`
	Source  MQuoteSource `json:"Source"`
}

type MQuoteSource struct {
	Label string `json:"Label"`
	Url   string `json:"Url"`
}

type MQuotePrices struct {
	Unit             string `json:"Unit"`
	Current          string `json:"Current"`
	Reference        string `json:"Reference"`
	Close            string `json:"Close"`
	Open             string `json:"Open"`
	Ceiling          string `json:"Ceiling"`
	Floor            string `json:"Floor"`
	Highest          string `json:"Highest"`
	Lowest           string `json:"Lowest"`
	Average          string `json:"Average"`
	HighestOf52Weeks string `json:"HighestOf52Weeks"`
	LowestOf52Weeks  string `json:"LowestOf52Weeks"`
}

type MQuoteChanges struct {
	Volume  string `json:"Volume"`
	Percent string `json:"Percent"`
	Type    string `json:"Type"`  // up, down or none
	Color   string `json:"Color"` // green, red or yellow
}
