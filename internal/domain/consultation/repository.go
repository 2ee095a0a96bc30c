package consultation

import (
	"context"
	"errors"
	"time"

	"github.com/snappdoctor/telemed-api/internal/models"
)

// ErrSlotTaken is returned by Create when another active consultation
// already holds the exact (doctor, scheduled_at) pair. The store's
// partial unique index turns the concurrent-booking race into this
// error deterministically.
var ErrSlotTaken = errors.New("consultation slot already taken")

type Repository interface {
	// -------- Doctor --------
	GetDoctor(ctx context.Context, id uint) (*models.Doctor, error)

	// -------- Consultation --------
	Create(ctx context.Context, c *models.Consultation) error

	GetForUser(ctx context.Context, id uint, userID string) (*models.Consultation, error)
	GetForDoctor(ctx context.Context, id uint, doctorID uint) (*models.Consultation, error)
	Update(ctx context.Context, c *models.Consultation) error

	ListForUser(ctx context.Context, userID string) ([]models.Consultation, error)
	ListForDoctorBetween(ctx context.Context, doctorID uint, start, end time.Time) ([]models.Consultation, error)
}
