package consultation

import (
	"context"

	"github.com/snappdoctor/telemed-api/internal/audit"
	domain "github.com/snappdoctor/telemed-api/internal/domain/consultation"
	"github.com/snappdoctor/telemed-api/internal/models"
)

type CancelConsultation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelConsultation(repo domain.Repository, audit *audit.Dispatcher) *CancelConsultation {
	return &CancelConsultation{repo: repo, audit: audit}
}

// Execute cancels the patient's own pending or confirmed consultation.
func (uc *CancelConsultation) Execute(ctx context.Context, userID string, consultationID uint) (*models.Consultation, error) {

	c, err := uc.repo.GetForUser(ctx, consultationID, userID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(c); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  userID,
		DoctorID: &c.DoctorID,
		Action:   "consultation_cancelled",
		Entity:   "consultation",
		EntityID: &c.ID,
	})

	return c, nil
}
