package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"market-indexes/src/models"
)

func TestMarketHoursTTLFollowsSession(t *testing.T) {
	t.Parallel()

	// Arrange: a scheduler on the fallback calendar.
	ms := &MarketScheduler{Calendar: fallbackCalendar(), Clock: time.Now}
	policy := NewMarketHoursTTL(ms, models.MTTLConfig{MarketHoursSeconds: 180, OffHoursSeconds: 1800})

	// Assert: short inside market hours, long outside.
	require.Equal(t, 3*time.Minute, policy.TTL(time.Date(2024, 6, 7, 10, 30, 0, 0, ict)))
	require.Equal(t, 30*time.Minute, policy.TTL(time.Date(2024, 6, 7, 18, 0, 0, 0, ict)))
	require.Equal(t, 30*time.Minute, policy.TTL(time.Date(2024, 6, 8, 10, 30, 0, 0, ict)))
}

func TestSchedulerUsesInjectedClock(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 6, 7, 3, 30, 0, 0, time.UTC)
	ms := &MarketScheduler{Calendar: fallbackCalendar(), Clock: func() time.Time { return fixed }}

	require.True(t, ms.IsOpen())
	require.Equal(t, 10, ms.Now().Hour())
	require.Equal(t, ict, ms.Now().Location())
}

func TestMarketHoursTTLSessionBoundaries(t *testing.T) {
	t.Parallel()

	ttl := models.MTTLConfig{MarketHoursSeconds: 180, OffHoursSeconds: 1800}
	schedulers := map[string]*MarketScheduler{
		"fallback": {Calendar: fallbackCalendar(), Clock: time.Now},
		"xstc":     {Calendar: hoseCalendar(t), Clock: time.Now},
	}

	cases := []struct {
		name         string
		hour, minute int
		want         time.Duration
	}{
		{"before open", 8, 59, 30 * time.Minute},
		{"at open", 9, 0, 3 * time.Minute},
		{"last minute", 14, 59, 3 * time.Minute},
		{"at close", 15, 0, 30 * time.Minute},
	}

	for name, ms := range schedulers {
		policy := NewMarketHoursTTL(ms, ttl)
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				// Act
				got := policy.TTL(time.Date(2024, 6, 7, tc.hour, tc.minute, 0, 0, ict))

				// Assert
				require.Equal(t, tc.want, got)
			})
		}
	}
}

func TestMarketHoursTTLLunchBreak(t *testing.T) {
	t.Parallel()

	ms := &MarketScheduler{Calendar: hoseCalendar(t), Clock: time.Now}
	policy := NewMarketHoursTTL(ms, models.MTTLConfig{MarketHoursSeconds: 180, OffHoursSeconds: 1800})
	at := func(hour, minute int) time.Time { return time.Date(2024, 6, 7, hour, minute, 0, 0, ict) }

	require.Equal(t, 3*time.Minute, policy.TTL(at(11, 29)))
	require.Equal(t, 30*time.Minute, policy.TTL(at(11, 30)))
	require.Equal(t, 30*time.Minute, policy.TTL(at(12, 59)))
	require.Equal(t, 3*time.Minute, policy.TTL(at(13, 0)))
}
