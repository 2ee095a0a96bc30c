package schedule

import (
	"time"

	"github.com/snappdoctor/telemed-api/internal/models"
	"github.com/snappdoctor/telemed-api/internal/timeslot"
)

// Profile is the full availability configuration the slot generator
// consumes: recurring weekday windows, daily breaks, slot geometry and
// the doctor's offered modalities and fee. It is assembled per request,
// never stored as one row.
type Profile struct {
	DoctorID uint

	Windows  []models.DoctorScheduleDay
	Breaks   []models.DoctorBreak
	Settings models.DoctorTimeSettings

	OffersVoiceCall bool
	OffersVideoCall bool
	OffersInPerson  bool
	ConsultationFee int64
}

// WindowFor returns the active working interval for the given weekday.
// No window row, an inactive row, or an unparsable row all mean zero
// capacity that day.
func (p Profile) WindowFor(day time.Weekday) (timeslot.Interval, bool) {
	for _, w := range p.Windows {
		if w.Weekday != int(day) || !w.Active {
			continue
		}
		iv, err := timeslot.New(w.StartTime, w.EndTime)
		if err != nil || !iv.Valid() {
			return timeslot.Interval{}, false
		}
		return iv, true
	}
	return timeslot.Interval{}, false
}

// ActiveBreaks returns every active break as an interval. Breaks apply
// on every day the doctor works.
func (p Profile) ActiveBreaks() []timeslot.Interval {
	var out []timeslot.Interval
	for _, b := range p.Breaks {
		if !b.Active {
			continue
		}
		iv, err := timeslot.New(b.StartTime, b.EndTime)
		if err != nil || !iv.Valid() {
			continue
		}
		out = append(out, iv)
	}
	return out
}
