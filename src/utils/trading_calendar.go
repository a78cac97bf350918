package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/scmhub/calendar"

	"market-indexes/src/logger"
	"market-indexes/src/models"
)

// TradingCalendar calculates trading days using scmhub/calendar.
type TradingCalendar struct {
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location

	// Session window used in fallback mode, minutes after midnight
	openMinute  int
	closeMinute int
}

// -----------------------------------------------------------------------------

// GetCalendar resolves the calendar of the configured MIC (ISO 10383).
// scmhub/calendar has no registry entry for xstc, so the Ho Chi Minh exchange
// is built here. Any other unknown MIC gets a Mon-Fri calendar with the
// configured session window and timezone.
func GetCalendar(cfg models.MMarketConfig, l *logger.Logger) *TradingCalendar {
	mic := strings.ToLower(strings.TrimSpace(cfg.MIC))
	if mic == "" {
		mic = DefaultMarketMIC
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil || cfg.Timezone == "" {
		loc, err = time.LoadLocation(DefaultMarketTimezone)
		if err != nil {
			loc = time.FixedZone("ICT", 7*60*60)
		}
	}

	if cal := calendar.GetCalendar(mic); cal != nil {
		tz := cal.Loc
		if tz == nil {
			tz = loc
		}
		return &TradingCalendar{Calendar: cal, Timezone: tz}
	}

	openMinute := clockOrDefault(cfg.SessionOpen, DefaultSessionOpen, "session_open", l)
	closeMinute := clockOrDefault(cfg.SessionClose, DefaultSessionClose, "session_close", l)

	if mic == DefaultMarketMIC {
		lunchStart := clockOrDefault(cfg.LunchStart, DefaultLunchStart, "lunch_start", l)
		lunchEnd := clockOrDefault(cfg.LunchEnd, DefaultLunchEnd, "lunch_end", l)
		l.Info("Calendar %s: %s-%s, lunch %s-%s %s.", mic, formatClock(openMinute),
			formatClock(closeMinute), formatClock(lunchStart), formatClock(lunchEnd), loc)
		return &TradingCalendar{
			Calendar: newHoseCalendar(loc, &calendar.Session{
				Open:       minutes(openMinute),
				BreakStart: minutes(lunchStart),
				BreakStop:  minutes(lunchEnd),
				Close:      minutes(closeMinute),
			}),
			Timezone: loc,
		}
	}

	l.Info("No calendar for MIC '%s'. Using fallback Mon-Fri %s-%s %s.",
		mic, formatClock(openMinute), formatClock(closeMinute), loc)

	return &TradingCalendar{
		Fallback:    true,
		Timezone:    loc,
		openMinute:  openMinute,
		closeMinute: closeMinute,
	}
}

// -----------------------------------------------------------------------------

// newHoseCalendar builds the Ho Chi Minh Stock Exchange calendar. Tet runs
// from two days before the lunar new year to its 4th day. Holidays falling
// on a weekend are not moved to a weekday.
func newHoseCalendar(loc *time.Location, session *calendar.Session) *calendar.Calendar {
	c := calendar.NewCalendar("Ho Chi Minh Stock Exchange", loc)
	c.SetSession(session)

	hungKings := calendar.LunarNewYear.Copy("Hung Kings Commemoration Day")
	hungKings.Month, hungKings.Day = time.Month(3), 10

	reunification := calendar.NewYear.Copy("Reunification Day")
	reunification.Month, reunification.Day = time.April, 30

	nationalDay := calendar.NewYear.Copy("National Day")
	nationalDay.Month, nationalDay.Day = time.September, 2

	c.AddHolidays(
		calendar.NewYear,
		calendar.LunarNewYear.Copy("Tet Eve Minus One").SetOffset(-2),
		calendar.LunarNewYearEve,
		calendar.LunarNewYear,
		calendar.LunarNewYear.Copy("Tet 2nd Day").SetOffset(1),
		calendar.LunarNewYear.Copy("Tet 3rd Day").SetOffset(2),
		calendar.LunarNewYear.Copy("Tet 4th Day").SetOffset(3),
		hungKings,
		reunification,
		calendar.WorkersDay,
		nationalDay,
	)
	return c
}

// -----------------------------------------------------------------------------

func (tc *TradingCalendar) IsTradingDay(date time.Time) bool {
	// Normalize to timezone if available
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	if tc.Fallback || !tc.inRange(date) {
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	// Library handles IsHoliday / IsBusinessDay
	return tc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// IsOpenOnMinute checks if the market is open at a specific minute. The
// session and the lunch break are half-open: open at 09:00, closed at 15:00.
func (tc *TradingCalendar) IsOpenOnMinute(t time.Time) bool {
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}
	if !tc.IsTradingDay(t) {
		return false
	}

	minute := t.Hour()*60 + t.Minute()
	if tc.Fallback {
		return minute >= tc.openMinute && minute < tc.closeMinute
	}

	session := tc.Calendar.Session()
	if session == nil || session.IsZero() {
		return true
	}
	since := minutes(minute)
	closeAt := session.Close
	if tc.inRange(t) && tc.Calendar.IsEarlyClose(t) && session.EarlyClose > 0 {
		closeAt = session.EarlyClose
	}
	if session.HasBreak() && since >= session.BreakStart && since < session.BreakStop {
		return false
	}
	return since >= session.Open && since < closeAt
}

// inRange guards the library calls, which panic outside the calendar's years
func (tc *TradingCalendar) inRange(t time.Time) bool {
	if tc.Calendar == nil {
		return false
	}
	start, end := tc.Calendar.Years()
	return t.Year() >= start && t.Year() <= end
}

// -----------------------------------------------------------------------------

// MostRecentTradingDay is today, moved back to Friday on weekends.
func MostRecentTradingDay(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, -1)
	case time.Sunday:
		return t.AddDate(0, 0, -2)
	default:
		return t
	}
}

// -----------------------------------------------------------------------------

func parseClock(value, fallback string) (int, error) {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		t, _ = time.Parse("15:04", fallback)
		return t.Hour()*60 + t.Minute(), fmt.Errorf("expected HH:MM: %w", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func clockOrDefault(value, fallback, name string, l *logger.Logger) int {
	minute, err := parseClock(value, fallback)
	if err != nil {
		l.Warning("Invalid %s %q: %v", name, value, err)
	}
	return minute
}

func minutes(minute int) time.Duration {
	return time.Duration(minute) * time.Minute
}

func formatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
