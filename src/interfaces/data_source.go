package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"market-indexes/src/models"
)

// -----------------------------------------------------------------------------
// Upstream sources. Each call is a single attempt bounded by a timeout.
// -----------------------------------------------------------------------------

type IStockQuoteSource interface {
	// GetStockQuote acquires and normalizes the quote of one symbol.
	GetStockQuote(ctx context.Context, code string) (*models.MNormalizedQuote, error)
}

// -----------------------------------------------------------------------------

type IExchangeRateSource interface {
	FetchRates(ctx context.Context) (map[string]models.MExchangeRate, error)
}

// -----------------------------------------------------------------------------

type IStockIndexSource interface {
	FetchIndexes(ctx context.Context) (models.MStockIndexes, error)
}

// -----------------------------------------------------------------------------
// ITTLPolicy picks the cache lifetime for a result computed at now.
// -----------------------------------------------------------------------------

type ITTLPolicy interface {
	TTL(now time.Time) time.Duration
}

// -----------------------------------------------------------------------------
// IQueryProcessor is the read-only query surface shared by HTTP and gRPC.
// -----------------------------------------------------------------------------

type IQueryProcessor interface {
	Process(ctx context.Context, verb, objectName, identity string) (json.RawMessage, error)
	IsMarketOpen() bool
}
