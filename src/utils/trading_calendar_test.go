package utils

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"market-indexes/src/logger"
	"market-indexes/src/models"
)

var ict = time.FixedZone("ICT", 7*60*60)

func fallbackCalendar() *TradingCalendar {
	return &TradingCalendar{Fallback: true, Timezone: ict, openMinute: 9 * 60, closeMinute: 15 * 60}
}

func TestMostRecentTradingDay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"friday", time.Date(2024, 6, 7, 10, 0, 0, 0, ict), "2024-06-07"},
		{"saturday", time.Date(2024, 6, 8, 10, 0, 0, 0, ict), "2024-06-07"},
		{"sunday", time.Date(2024, 6, 9, 23, 59, 0, 0, ict), "2024-06-07"},
		{"monday", time.Date(2024, 6, 10, 0, 1, 0, 0, ict), "2024-06-10"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, MostRecentTradingDay(tc.now).Format(time.DateOnly))
		})
	}
}

func TestFallbackCalendarSessionWindow(t *testing.T) {
	t.Parallel()

	cal := fallbackCalendar()

	// Assert: open inside the window on a weekday only.
	require.True(t, cal.IsOpenOnMinute(time.Date(2024, 6, 7, 9, 0, 0, 0, ict)))
	require.True(t, cal.IsOpenOnMinute(time.Date(2024, 6, 7, 14, 59, 0, 0, ict)))
	require.False(t, cal.IsOpenOnMinute(time.Date(2024, 6, 7, 15, 0, 0, 0, ict)))
	require.False(t, cal.IsOpenOnMinute(time.Date(2024, 6, 7, 8, 59, 0, 0, ict)))
	require.False(t, cal.IsOpenOnMinute(time.Date(2024, 6, 8, 10, 0, 0, 0, ict)))

	// Assert: times are compared in the market timezone (03:00 UTC is 10:00 ICT).
	require.True(t, cal.IsOpenOnMinute(time.Date(2024, 6, 7, 3, 0, 0, 0, time.UTC)))
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	minute, err := parseClock("09:15", DefaultSessionOpen)
	require.NoError(t, err)
	require.Equal(t, 9*60+15, minute)

	minute, err = parseClock("", DefaultSessionClose)
	require.NoError(t, err)
	require.Equal(t, 15*60, minute)

	minute, err = parseClock("nine", DefaultSessionOpen)
	require.Error(t, err)
	require.Equal(t, 9*60, minute)
}

func TestGetCalendarAlwaysUsable(t *testing.T) {
	t.Parallel()

	cal := GetCalendar(models.MMarketConfig{MIC: "zzzz", Timezone: "Asia/Ho_Chi_Minh"}, logger.NewLoggerTo(io.Discard, "calendar"))
	require.NotNil(t, cal)
	require.True(t, cal.Fallback)
	require.NotNil(t, cal.Timezone)
	require.False(t, cal.IsOpenOnMinute(time.Date(2024, 6, 9, 10, 0, 0, 0, ict)))
}

func hoseCalendar(t *testing.T) *TradingCalendar {
	t.Helper()
	cal := GetCalendar(models.MMarketConfig{MIC: "XSTC", Timezone: DefaultMarketTimezone}, logger.NewLoggerTo(io.Discard, "calendar"))
	require.False(t, cal.Fallback)
	require.NotNil(t, cal.Calendar)
	return cal
}

func TestGetCalendarRegistryMIC(t *testing.T) {
	t.Parallel()

	// Arrange
	cal := GetCalendar(models.MMarketConfig{MIC: "xnys"}, logger.NewLoggerTo(io.Discard, "calendar"))
	require.False(t, cal.Fallback)
	require.Equal(t, "America/New_York", cal.Timezone.String())

	ny := cal.Timezone

	// Assert: regular session, Independence Day and a weekend.
	require.True(t, cal.IsOpenOnMinute(time.Date(2025, 7, 3, 10, 0, 0, 0, ny)))
	require.False(t, cal.IsOpenOnMinute(time.Date(2025, 7, 4, 10, 0, 0, 0, ny)))
	require.False(t, cal.IsOpenOnMinute(time.Date(2025, 7, 5, 10, 0, 0, 0, ny)))
}

func TestHoseCalendarHolidays(t *testing.T) {
	t.Parallel()

	cal := hoseCalendar(t)

	cases := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"ordinary tuesday", time.Date(2025, 6, 10, 10, 0, 0, 0, ict), true},
		{"new year", time.Date(2025, 1, 1, 10, 0, 0, 0, ict), false},
		{"two days before tet", time.Date(2025, 1, 27, 10, 0, 0, 0, ict), false},
		{"tet eve", time.Date(2025, 1, 28, 10, 0, 0, 0, ict), false},
		{"tet", time.Date(2025, 1, 29, 10, 0, 0, 0, ict), false},
		{"tet 3rd day", time.Date(2025, 1, 31, 10, 0, 0, 0, ict), false},
		{"after tet", time.Date(2025, 2, 3, 10, 0, 0, 0, ict), true},
		{"reunification day", time.Date(2025, 4, 30, 10, 0, 0, 0, ict), false},
		{"labour day", time.Date(2025, 5, 1, 10, 0, 0, 0, ict), false},
		{"national day", time.Date(2025, 9, 2, 10, 0, 0, 0, ict), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, cal.IsTradingDay(tc.day))
			require.Equal(t, tc.want, cal.IsOpenOnMinute(tc.day))
		})
	}
}

func TestHoseCalendarLunchBreak(t *testing.T) {
	t.Parallel()

	cal := hoseCalendar(t)
	at := func(hour, minute int) time.Time { return time.Date(2025, 6, 10, hour, minute, 0, 0, ict) }

	// Assert: both the session and the break are half-open.
	require.False(t, cal.IsOpenOnMinute(at(8, 59)))
	require.True(t, cal.IsOpenOnMinute(at(9, 0)))
	require.True(t, cal.IsOpenOnMinute(at(11, 29)))
	require.False(t, cal.IsOpenOnMinute(at(11, 30)))
	require.False(t, cal.IsOpenOnMinute(at(12, 59)))
	require.True(t, cal.IsOpenOnMinute(at(13, 0)))
	require.True(t, cal.IsOpenOnMinute(at(14, 59)))
	require.False(t, cal.IsOpenOnMinute(at(15, 0)))
}

func TestHoseCalendarOutsideYearsFallsBackToWeekdays(t *testing.T) {
	t.Parallel()

	cal := hoseCalendar(t)

	// Assert: no panic far outside the holiday table.
	require.True(t, cal.IsOpenOnMinute(time.Date(1990, 1, 2, 10, 0, 0, 0, ict)))
	require.False(t, cal.IsOpenOnMinute(time.Date(1990, 1, 6, 10, 0, 0, 0, ict)))
}
