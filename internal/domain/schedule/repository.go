package schedule

import (
	"context"

	"github.com/snappdoctor/telemed-api/internal/models"
)

// ModalityFlags are the doctor-level consultation channels updated
// together with the schedule.
type ModalityFlags struct {
	OffersVoiceCall bool
	OffersVideoCall bool
	OffersInPerson  bool
}

type Repository interface {
	// -------- Read --------
	GetProfile(ctx context.Context, doctorID uint) (*Profile, error)

	ListWindows(ctx context.Context, doctorID uint) ([]models.DoctorScheduleDay, error)
	ListBreaks(ctx context.Context, doctorID uint) ([]models.DoctorBreak, error)
	GetSettings(ctx context.Context, doctorID uint) (*models.DoctorTimeSettings, error)

	HasSchedule(ctx context.Context, doctorID uint) (bool, error)

	// -------- Write --------

	// SeedDefaults inserts the given rows in one transaction. Callers
	// check HasSchedule first; seeding twice is a caller bug.
	SeedDefaults(
		ctx context.Context,
		doctorID uint,
		windows []models.DoctorScheduleDay,
		breaks []models.DoctorBreak,
		settings models.DoctorTimeSettings,
	) error

	// ReplaceSchedule discards the doctor's window and break sets,
	// inserts the supplied ones, upserts the time settings and updates
	// the doctor's modality flags and fee, all in a single transaction.
	ReplaceSchedule(
		ctx context.Context,
		doctorID uint,
		windows []models.DoctorScheduleDay,
		breaks []models.DoctorBreak,
		settings models.DoctorTimeSettings,
		flags ModalityFlags,
		fee int64,
	) error
}
