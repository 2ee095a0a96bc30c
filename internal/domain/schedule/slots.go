package schedule

import (
	"time"

	"github.com/snappdoctor/telemed-api/internal/timeslot"
)

// Slot is a derived bookable interval on a concrete date. Slots are
// computed fresh on every query and never persisted.
type Slot struct {
	Interval timeslot.Interval
	Booked   bool
}

// GenerateSlots lays out the day's bookable slots for a profile:
// the weekday's working window minus active breaks, filled with
// consecutive slots of the configured duration separated by the
// configured gap, capped at the daily maximum. A slot overlapping any
// interval in busy is kept but marked Booked.
//
// Free segments are processed in chronological order, so when the cap
// is hit the earlier slots win.
func GenerateSlots(p Profile, date time.Time, busy []timeslot.Interval) []Slot {
	window, ok := p.WindowFor(date.Weekday())
	if !ok {
		return nil
	}

	dur := p.Settings.SlotDurationMinutes
	gap := p.Settings.GapMinutes
	capacity := p.Settings.MaxDailySlots
	if dur <= 0 || gap < 0 || capacity <= 0 {
		return nil
	}

	var slots []Slot
	for _, seg := range window.Subtract(p.ActiveBreaks()) {
		for cur := seg.Start; cur+dur <= seg.End; cur += dur + gap {
			if len(slots) >= capacity {
				return slots
			}
			iv := timeslot.Interval{Start: cur, End: cur + dur}
			slots = append(slots, Slot{
				Interval: iv,
				Booked:   overlapsAny(iv, busy),
			})
		}
	}
	return slots
}

func overlapsAny(iv timeslot.Interval, busy []timeslot.Interval) bool {
	for _, b := range busy {
		if iv.Overlaps(b) {
			return true
		}
	}
	return false
}
