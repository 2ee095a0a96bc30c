package schedule

import (
	"context"

	domain "github.com/snappdoctor/telemed-api/internal/domain/schedule"
)

type GetSchedule struct {
	repo domain.Repository
}

func NewGetSchedule(repo domain.Repository) *GetSchedule {
	return &GetSchedule{repo: repo}
}

// Execute seeds the default schedule on first access, then returns the
// doctor's full availability profile. Seeding is idempotent: a doctor
// with any existing window row is left untouched.
func (uc *GetSchedule) Execute(ctx context.Context, doctorID uint) (*domain.Profile, error) {
	has, err := uc.repo.HasSchedule(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if !has {
		err := uc.repo.SeedDefaults(
			ctx,
			doctorID,
			domain.DefaultWindows(doctorID),
			domain.DefaultBreaks(doctorID),
			domain.DefaultSettings(doctorID),
		)
		if err != nil {
			return nil, err
		}
	}

	return uc.repo.GetProfile(ctx, doctorID)
}
