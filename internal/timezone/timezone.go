package timezone

import "time"

// The platform runs in a single wall-clock zone; every schedule window
// and consultation timestamp is interpreted in it.
const DefaultTimezone = "Asia/Tehran"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDate parses a YYYY-MM-DD day in the platform zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}

// ParseDateTime parses a date and clock pair in the platform zone.
func ParseDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, Location())
}

// DayBounds returns the half-open [start, end) of t's calendar day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
