package vietstock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
)

// StockQuoteSource runs bootstrap, acquire, lookup and normalize in sequence.
type StockQuoteSource struct {
	LandingURL   string
	Bootstrapper *SessionBootstrapper
	Acquirer     *QuoteAcquirer
	Directory    *CompanyDirectory
	Normalizer   *Normalizer
	Logger       *logger.Logger
}

// -----------------------------------------------------------------------------

func NewStockQuoteSource(cfg models.MVietStockConfig, nm interfaces.INetworkManager, now func() time.Time, log *logger.Logger) *StockQuoteSource {
	base := strings.TrimRight(cfg.BaseURL, "/")
	return &StockQuoteSource{
		LandingURL:   base + "/",
		Bootstrapper: NewSessionBootstrapper(nm, time.Duration(cfg.BootstrapTimeout)*time.Second, log),
		Acquirer:     NewQuoteAcquirer(nm, base+cfg.TradingPath, base+"/", log),
		Directory:    NewCompanyDirectory(nm, cfg, log),
		Normalizer:   NewNormalizer(cfg, now),
		Logger:       log,
	}
}

// -----------------------------------------------------------------------------

func (s *StockQuoteSource) GetStockQuote(ctx context.Context, code string) (*models.MNormalizedQuote, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	session, err := s.Bootstrapper.Bootstrap(ctx, s.LandingURL)
	if err != nil {
		return nil, err
	}

	raw, err := s.Acquirer.Acquire(ctx, code, session)
	if err != nil {
		return nil, err
	}

	lookup := s.Directory.Lookup(ctx, code)
	if !lookup.Found() {
		s.Logger.Debug("Company enrichment skipped for %s: %s", code, lookup.Diagnostic)
	}

	// The lookup swallows errors, so check for cancellation explicitly
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("stock quote %s: %w", code, err)
	}

	quote, err := s.Normalizer.Normalize(raw, code, lookup.Info)
	if err != nil {
		s.Logger.Warning("Normalizing %s failed: %v", code, err)
		return nil, err
	}
	return quote, nil
}
