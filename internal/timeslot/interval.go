package timeslot

import (
	"fmt"
	"sort"
	"time"
)

// Interval is a wall-clock time-of-day range, half-open [Start, End),
// expressed in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

const minutesPerDay = 24 * 60

// New builds an interval from clock strings ("15:04").
func New(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MinuteOfDay returns t's position within its own day, in minutes.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func (i Interval) Valid() bool {
	return i.Start < i.End
}

func (i Interval) Duration() int {
	return i.End - i.Start
}

func (i Interval) StartClock() string { return FormatClock(i.Start) }
func (i Interval) EndClock() string   { return FormatClock(i.End) }

// Overlaps reports whether i and other share any time. Touching
// endpoints do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains reports whether inner lies entirely within i.
func (i Interval) Contains(inner Interval) bool {
	return i.Start <= inner.Start && inner.End <= i.End
}

// Subtract removes every overlapping portion of cuts from i and returns
// the remaining sub-intervals in ascending order. Cuts may be unordered,
// may overlap each other, and may extend beyond i.
func (i Interval) Subtract(cuts []Interval) []Interval {
	if !i.Valid() {
		return nil
	}

	relevant := make([]Interval, 0, len(cuts))
	for _, c := range cuts {
		if c.Valid() && c.Overlaps(i) {
			relevant = append(relevant, c)
		}
	}
	if len(relevant) == 0 {
		return []Interval{i}
	}

	sort.Slice(relevant, func(a, b int) bool {
		return relevant[a].Start < relevant[b].Start
	})

	var out []Interval
	cursor := i.Start
	for _, c := range relevant {
		if c.Start > cursor {
			out = append(out, Interval{Start: cursor, End: min(c.Start, i.End)})
		}
		if c.End > cursor {
			cursor = c.End
		}
		if cursor >= i.End {
			return out
		}
	}
	if cursor < i.End {
		out = append(out, Interval{Start: cursor, End: i.End})
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
