package consultation

import (
	"context"
	"time"

	domain "github.com/snappdoctor/telemed-api/internal/domain/consultation"
	"github.com/snappdoctor/telemed-api/internal/models"
	"github.com/snappdoctor/telemed-api/internal/timezone"
)

type ListForPatient struct {
	repo domain.Repository
}

func NewListForPatient(repo domain.Repository) *ListForPatient {
	return &ListForPatient{repo: repo}
}

func (uc *ListForPatient) Execute(ctx context.Context, userID string) ([]models.Consultation, error) {
	return uc.repo.ListForUser(ctx, userID)
}

type ListForDoctorByDate struct {
	repo domain.Repository
}

func NewListForDoctorByDate(repo domain.Repository) *ListForDoctorByDate {
	return &ListForDoctorByDate{repo: repo}
}

func (uc *ListForDoctorByDate) Execute(ctx context.Context, doctorID uint, date time.Time) ([]models.Consultation, error) {
	start, end := timezone.DayBounds(date)
	return uc.repo.ListForDoctorBetween(ctx, doctorID, start, end)
}
