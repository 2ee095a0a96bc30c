package schedule

import (
	"context"
	"time"

	consultdomain "github.com/snappdoctor/telemed-api/internal/domain/consultation"
	domain "github.com/snappdoctor/telemed-api/internal/domain/schedule"
	"github.com/snappdoctor/telemed-api/internal/timezone"
)

type ListSlots struct {
	schedules     domain.Repository
	consultations consultdomain.Repository
}

func NewListSlots(schedules domain.Repository, consultations consultdomain.Repository) *ListSlots {
	return &ListSlots{schedules: schedules, consultations: consultations}
}

// Execute computes the doctor's slot calendar for one date, with slots
// held by active consultations marked booked.
func (uc *ListSlots) Execute(ctx context.Context, doctorID uint, date time.Time) ([]domain.Slot, error) {
	profile, err := uc.schedules.GetProfile(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := timezone.DayBounds(date)
	existing, err := uc.consultations.ListForDoctorBetween(ctx, doctorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	busy := consultdomain.BusyIntervals(existing, date, profile.Settings.SlotDurationMinutes)
	return domain.GenerateSlots(*profile, date, busy), nil
}
