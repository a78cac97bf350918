package utils

const (
	AppName = "market-indexes"

	DefaultMarketMIC      = "xstc"
	DefaultMarketTimezone = "Asia/Ho_Chi_Minh"
	DefaultSessionOpen    = "09:00"
	DefaultSessionClose   = "15:00"
	DefaultLunchStart     = "11:30"
	DefaultLunchEnd       = "13:00"
)

// Cache keys
const (
	CacheKeyExchangeRates    = "ExchangeRates"
	CacheKeyStockIndexes     = "StockIndexes"
	CacheKeyStockQuotePrefix = "StockQuote:"
)

// StockQuoteCacheKey is the cache key of one symbol's quote
func StockQuoteCacheKey(code string) string {
	return CacheKeyStockQuotePrefix + code
}
