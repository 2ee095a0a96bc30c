package consultation

import (
	"context"
	"time"

	"github.com/snappdoctor/telemed-api/internal/audit"
	domain "github.com/snappdoctor/telemed-api/internal/domain/consultation"
	"github.com/snappdoctor/telemed-api/internal/httperr"
	"github.com/snappdoctor/telemed-api/internal/models"
	"github.com/snappdoctor/telemed-api/internal/timezone"
)

// Action is a doctor-side status transition.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionNoShow   Action = "no_show"
)

type TransitionConsultation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTransitionConsultation(repo domain.Repository, audit *audit.Dispatcher) *TransitionConsultation {
	return &TransitionConsultation{repo: repo, audit: audit}
}

// Execute applies a workflow action to a consultation owned by the
// acting doctor.
func (uc *TransitionConsultation) Execute(
	ctx context.Context,
	actorID string,
	doctorID uint,
	consultationID uint,
	action Action,
) (*models.Consultation, error) {

	c, err := uc.repo.GetForDoctor(ctx, consultationID, doctorID)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := apply(c, action, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		DoctorID: &doctorID,
		Action:   "consultation_" + string(action),
		Entity:   "consultation",
		EntityID: &c.ID,
	})

	return c, nil
}

func apply(c *models.Consultation, action Action, now time.Time) error {
	switch action {
	case ActionConfirm:
		return domain.Confirm(c)
	case ActionStart:
		return domain.Start(c, now)
	case ActionComplete:
		return domain.Complete(c, now)
	case ActionNoShow:
		return domain.MarkNoShow(c)
	default:
		return httperr.ErrBusiness("unknown_action")
	}
}
