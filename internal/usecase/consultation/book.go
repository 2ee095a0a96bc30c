package consultation

import (
	"context"
	"errors"
	"time"

	"github.com/snappdoctor/telemed-api/internal/audit"
	domain "github.com/snappdoctor/telemed-api/internal/domain/consultation"
	scheduledomain "github.com/snappdoctor/telemed-api/internal/domain/schedule"
	"github.com/snappdoctor/telemed-api/internal/models"
	"github.com/snappdoctor/telemed-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookConsultationInput struct {
	UserID   string
	DoctorID uint

	Type        domain.Type
	ScheduledAt time.Time
	Symptoms    string
}

// ======================================================
// USE CASE
// ======================================================

type BookConsultation struct {
	consultations domain.Repository
	schedules     scheduledomain.Repository
	audit         *audit.Dispatcher

	// now is swappable for tests.
	now func() time.Time
}

func NewBookConsultation(
	consultations domain.Repository,
	schedules scheduledomain.Repository,
	audit *audit.Dispatcher,
) *BookConsultation {
	return &BookConsultation{
		consultations: consultations,
		schedules:     schedules,
		audit:         audit,
		now:           timezone.Now,
	}
}

// Execute validates the booking against the doctor's derived slot
// calendar and, when accepted, persists a pending consultation with the
// fee fixed by the consultation type. A rejection comes back as a
// *consultation.BookingError.
func (uc *BookConsultation) Execute(ctx context.Context, in BookConsultationInput) (*models.Consultation, error) {

	doctor, err := uc.consultations.GetDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.schedules.GetProfile(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := timezone.DayBounds(in.ScheduledAt)
	existing, err := uc.consultations.ListForDoctorBetween(ctx, in.DoctorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	available := doctor.IsAvailable && doctor.IsActive
	if berr := domain.ValidateBooking(*profile, available, in.ScheduledAt, in.Type, existing, uc.now()); berr != nil {
		return nil, berr
	}

	c := &models.Consultation{
		UserID:          in.UserID,
		DoctorID:        in.DoctorID,
		Type:            string(in.Type),
		Status:          string(domain.InitialStatus()),
		ScheduledAt:     in.ScheduledAt,
		PatientSymptoms: in.Symptoms,
		Fee:             domain.FeeFor(in.Type),
	}

	if err := uc.consultations.Create(ctx, c); err != nil {
		// Two requests can validate against the same free slot; the
		// store's uniqueness constraint settles the race.
		if errors.Is(err, domain.ErrSlotTaken) {
			return nil, &domain.BookingError{
				Reason:  domain.ReasonSlotUnavailable,
				Message: "the slot was taken while booking",
			}
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.UserID,
		DoctorID: &in.DoctorID,
		Action:   "consultation_booked",
		Entity:   "consultation",
		EntityID: &c.ID,
	})

	return c, nil
}
