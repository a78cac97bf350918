package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"market-indexes/src/helpers"
	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
	"market-indexes/src/utils"
)

// Market reports whether the exchange trades at a given instant
type Market interface {
	IsOpenAt(t time.Time) bool
}

// -----------------------------------------------------------------------------

// IndexesService answers exchange-rate, stock-index and stock-quote queries.
type IndexesService struct {
	Responder *Responder
	Quotes    interfaces.IStockQuoteSource
	Rates     interfaces.IExchangeRateSource
	Indexes   interfaces.IStockIndexSource
	Market    Market

	QuoteTTL   interfaces.ITTLPolicy
	IndexesTTL interfaces.ITTLPolicy
	RatesTTL   interfaces.ITTLPolicy

	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func (s *IndexesService) GetExchangeRates(ctx context.Context) (json.RawMessage, error) {
	return s.Responder.GetOrFetch(ctx, utils.CacheKeyExchangeRates, s.RatesTTL, models.UpdateExchangeRates,
		func(ctx context.Context) (any, error) {
			return s.Rates.FetchRates(ctx)
		})
}

// -----------------------------------------------------------------------------

func (s *IndexesService) GetStockIndexes(ctx context.Context) (json.RawMessage, error) {
	return s.Responder.GetOrFetch(ctx, utils.CacheKeyStockIndexes, s.IndexesTTL, models.UpdateStockIndexes,
		func(ctx context.Context) (any, error) {
			return s.Indexes.FetchIndexes(ctx)
		})
}

// -----------------------------------------------------------------------------

func (s *IndexesService) GetStockQuote(ctx context.Context, code string) (json.RawMessage, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, helpers.NewInvalidRequest("stock code is required", nil)
	}

	return s.Responder.GetOrFetch(ctx, utils.StockQuoteCacheKey(code), s.QuoteTTL, models.UpdateStockQuote,
		func(ctx context.Context) (any, error) {
			return s.Quotes.GetStockQuote(ctx, code)
		})
}

// -----------------------------------------------------------------------------

// Process dispatches a read by verb, object name and optional identity.
func (s *IndexesService) Process(ctx context.Context, verb, objectName, identity string) (json.RawMessage, error) {
	if !strings.EqualFold(verb, http.MethodGet) {
		return nil, helpers.NewInvalidRequest(fmt.Sprintf("%s is not supported", strings.ToUpper(verb)), helpers.ErrMethodNotAllowed)
	}

	switch strings.ToLower(strings.TrimSpace(objectName)) {
	case "rates", "exchangerates", "exchange-rates":
		return s.GetExchangeRates(ctx)

	case "stock", "stockquote", "stockquotes", "stock-quote", "stock-quotes":
		if strings.TrimSpace(identity) == "" {
			return s.GetStockIndexes(ctx)
		}
		return s.GetStockQuote(ctx, identity)

	default:
		return nil, helpers.NewInvalidRequest(fmt.Sprintf("unknown object %q", objectName), nil)
	}
}

// -----------------------------------------------------------------------------

func (s *IndexesService) IsMarketOpen() bool {
	if s.Market == nil {
		return false
	}
	return s.Market.IsOpenAt(s.Responder.Clock())
}
