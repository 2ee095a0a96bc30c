package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/snappdoctor/telemed-api/internal/domain/schedule"
	"github.com/snappdoctor/telemed-api/internal/models"
)

// fakeScheduleRepo keeps the whole schedule in memory and applies
// writes all-or-nothing, like the transactional gorm implementation.
type fakeScheduleRepo struct {
	windows  []models.DoctorScheduleDay
	breaks   []models.DoctorBreak
	settings *models.DoctorTimeSettings

	flags domain.ModalityFlags
	fee   int64

	seedCalls    int
	replaceCalls int
	failWrites   bool
}

var errStore = errors.New("store down")

func (f *fakeScheduleRepo) GetProfile(_ context.Context, doctorID uint) (*domain.Profile, error) {
	settings := domain.DefaultSettings(doctorID)
	if f.settings != nil {
		settings = *f.settings
	}
	return &domain.Profile{
		DoctorID:        doctorID,
		Windows:         f.windows,
		Breaks:          f.breaks,
		Settings:        settings,
		OffersVoiceCall: f.flags.OffersVoiceCall,
		OffersVideoCall: f.flags.OffersVideoCall,
		OffersInPerson:  f.flags.OffersInPerson,
		ConsultationFee: f.fee,
	}, nil
}

func (f *fakeScheduleRepo) ListWindows(context.Context, uint) ([]models.DoctorScheduleDay, error) {
	return f.windows, nil
}

func (f *fakeScheduleRepo) ListBreaks(context.Context, uint) ([]models.DoctorBreak, error) {
	return f.breaks, nil
}

func (f *fakeScheduleRepo) GetSettings(context.Context, uint) (*models.DoctorTimeSettings, error) {
	return f.settings, nil
}

func (f *fakeScheduleRepo) HasSchedule(context.Context, uint) (bool, error) {
	return len(f.windows) > 0, nil
}

func (f *fakeScheduleRepo) SeedDefaults(
	_ context.Context,
	_ uint,
	windows []models.DoctorScheduleDay,
	breaks []models.DoctorBreak,
	settings models.DoctorTimeSettings,
) error {
	f.seedCalls++
	if f.failWrites {
		return errStore
	}
	f.windows = windows
	f.breaks = breaks
	f.settings = &settings
	return nil
}

func (f *fakeScheduleRepo) ReplaceSchedule(
	_ context.Context,
	_ uint,
	windows []models.DoctorScheduleDay,
	breaks []models.DoctorBreak,
	settings models.DoctorTimeSettings,
	flags domain.ModalityFlags,
	fee int64,
) error {
	f.replaceCalls++
	if f.failWrites {
		return errStore
	}
	f.windows = windows
	f.breaks = breaks
	f.settings = &settings
	f.flags = flags
	f.fee = fee
	return nil
}

var _ domain.Repository = (*fakeScheduleRepo)(nil)

// --------------------------------------------------
// GetSchedule
// --------------------------------------------------

func TestGetScheduleSeedsDefaultsOnce(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewGetSchedule(repo)

	profile, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.seedCalls)
	assert.Len(t, profile.Windows, 7)
	assert.Len(t, profile.Breaks, 2)
	assert.Equal(t, 30, profile.Settings.SlotDurationMinutes)

	// Second access is a no-op seed.
	_, err = uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.seedCalls)
}

func TestGetScheduleDefaultFridayInactive(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewGetSchedule(repo)

	profile, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)

	for _, w := range profile.Windows {
		if w.Weekday == 5 {
			assert.False(t, w.Active)
		} else {
			assert.True(t, w.Active)
		}
		assert.Equal(t, "09:00", w.StartTime)
		assert.Equal(t, "17:00", w.EndTime)
	}
}

// --------------------------------------------------
// ReplaceSchedule
// --------------------------------------------------

func validInput() ReplaceScheduleInput {
	return ReplaceScheduleInput{
		Windows: []WindowInput{
			{Weekday: 6, Active: true, StartTime: "10:00", EndTime: "14:00"},
		},
		Breaks: []BreakInput{
			{Category: "lunch", Label: "Lunch", Active: true, StartTime: "12:00", EndTime: "12:30"},
		},
		TimeSettings: TimeSettingsInput{
			SlotDurationMinutes: 20,
			GapMinutes:          10,
			MaxDailySlots:       8,
		},
		OffersVoiceCall: true,
		ConsultationFee: 150000,
	}
}

func TestReplaceScheduleRoundTrip(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewReplaceSchedule(repo, nil)

	require.NoError(t, uc.Execute(context.Background(), "actor-1", 7, validInput()))

	require.Len(t, repo.windows, 1)
	assert.Equal(t, uint(7), repo.windows[0].DoctorID)
	assert.Equal(t, 6, repo.windows[0].Weekday)
	assert.Equal(t, "10:00", repo.windows[0].StartTime)

	require.Len(t, repo.breaks, 1)
	assert.Equal(t, "lunch", repo.breaks[0].Category)

	require.NotNil(t, repo.settings)
	assert.Equal(t, 20, repo.settings.SlotDurationMinutes)
	assert.Equal(t, 10, repo.settings.GapMinutes)
	assert.Equal(t, 8, repo.settings.MaxDailySlots)

	assert.True(t, repo.flags.OffersVoiceCall)
	assert.Equal(t, int64(150000), repo.fee)
}

func TestReplaceScheduleValidationLeavesStoreUntouched(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewReplaceSchedule(repo, nil)

	in := validInput()
	in.Windows = append(in.Windows, WindowInput{
		Weekday: 6, Active: true, StartTime: "15:00", EndTime: "16:00",
	})

	err := uc.Execute(context.Background(), "actor-1", 7, in)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "duplicate_weekday", verr.Code)
	assert.Equal(t, 0, repo.replaceCalls)
}

func TestReplaceSchedulePersistenceFailure(t *testing.T) {
	repo := &fakeScheduleRepo{failWrites: true}
	uc := NewReplaceSchedule(repo, nil)

	err := uc.Execute(context.Background(), "actor-1", 7, validInput())
	require.ErrorIs(t, err, errStore)
	assert.Empty(t, repo.windows)
}
