package utils

import (
	"time"

	"market-indexes/src/logger"
	"market-indexes/src/models"
)

// MarketScheduler answers "is the market open" against the trading calendar
// and an injectable clock.
type MarketScheduler struct {
	Calendar *TradingCalendar
	Clock    func() time.Time
	Logger   *logger.Logger
}

// -----------------------------------------------------------------------------

func NewMarketScheduler(cfg models.MMarketConfig, l *logger.Logger) *MarketScheduler {
	ms := &MarketScheduler{
		Calendar: GetCalendar(cfg, l),
		Clock:    time.Now,
		Logger:   l,
	}
	ms.Logger.Info("MarketScheduler: market open now: %v", ms.IsOpen())
	return ms
}

// -----------------------------------------------------------------------------

// Now is the current time in the market's timezone
func (ms *MarketScheduler) Now() time.Time {
	now := ms.Clock()
	if ms.Calendar != nil && ms.Calendar.Timezone != nil {
		now = now.In(ms.Calendar.Timezone)
	}
	return now
}

// -----------------------------------------------------------------------------

func (ms *MarketScheduler) IsOpen() bool {
	return ms.IsOpenAt(ms.Clock())
}

// -----------------------------------------------------------------------------

func (ms *MarketScheduler) IsOpenAt(t time.Time) bool {
	if ms.Calendar == nil {
		return false
	}
	return ms.Calendar.IsOpenOnMinute(t)
}

// -----------------------------------------------------------------------------
// MarketHoursTTL is short while the market trades and long otherwise.
// -----------------------------------------------------------------------------

type MarketHoursTTL struct {
	Market      interface{ IsOpenAt(time.Time) bool }
	MarketHours time.Duration
	OffHours    time.Duration
}

func NewMarketHoursTTL(market interface{ IsOpenAt(time.Time) bool }, cfg models.MTTLConfig) *MarketHoursTTL {
	return &MarketHoursTTL{
		Market:      market,
		MarketHours: time.Duration(cfg.MarketHoursSeconds) * time.Second,
		OffHours:    time.Duration(cfg.OffHoursSeconds) * time.Second,
	}
}

func (p *MarketHoursTTL) TTL(now time.Time) time.Duration {
	if p.Market.IsOpenAt(now) {
		return p.MarketHours
	}
	return p.OffHours
}
