package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snappdoctor/telemed-api/internal/models"
)

func validSettings() models.DoctorTimeSettings {
	return models.DoctorTimeSettings{
		SlotDurationMinutes: 30,
		GapMinutes:          5,
		MaxDailySlots:       20,
	}
}

func TestValidateConfigOK(t *testing.T) {
	err := ValidateConfig(
		DefaultWindows(1),
		DefaultBreaks(1),
		validSettings(),
	)
	assert.Nil(t, err)
}

func TestValidateConfigDuplicateWeekday(t *testing.T) {
	windows := []models.DoctorScheduleDay{
		{Weekday: 1, Active: true, StartTime: "09:00", EndTime: "17:00"},
		{Weekday: 1, Active: false, StartTime: "10:00", EndTime: "18:00"},
	}
	err := ValidateConfig(windows, nil, validSettings())
	require.NotNil(t, err)
	assert.Equal(t, "duplicate_weekday", err.Code)
	assert.Equal(t, "windows[1].weekday", err.Field)
}

func TestValidateConfigInvertedWindow(t *testing.T) {
	windows := []models.DoctorScheduleDay{
		{Weekday: 2, Active: true, StartTime: "17:00", EndTime: "09:00"},
	}
	err := ValidateConfig(windows, nil, validSettings())
	require.NotNil(t, err)
	assert.Equal(t, "inverted_interval", err.Code)
}

func TestValidateConfigBadClockFormat(t *testing.T) {
	windows := []models.DoctorScheduleDay{
		{Weekday: 2, Active: true, StartTime: "9am", EndTime: "17:00"},
	}
	err := ValidateConfig(windows, nil, validSettings())
	require.NotNil(t, err)
	assert.Equal(t, "invalid_time", err.Code)
}

func TestValidateConfigInvertedBreak(t *testing.T) {
	breaks := []models.DoctorBreak{
		{Category: BreakLunch, StartTime: "13:30", EndTime: "12:30"},
	}
	err := ValidateConfig(nil, breaks, validSettings())
	require.NotNil(t, err)
	assert.Equal(t, "inverted_interval", err.Code)
	assert.Equal(t, "breaks[0]", err.Field)
}

func TestValidateConfigBreakCategory(t *testing.T) {
	breaks := []models.DoctorBreak{
		{Category: "siesta", StartTime: "12:30", EndTime: "13:30"},
	}
	err := ValidateConfig(nil, breaks, validSettings())
	require.NotNil(t, err)
	assert.Equal(t, "invalid_category", err.Code)
}

func TestValidateConfigSettingsRanges(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.DoctorTimeSettings)
		wantOK   bool
		wantCode string
	}{
		{"duration too short", func(s *models.DoctorTimeSettings) { s.SlotDurationMinutes = 5 }, false, "out_of_range"},
		{"duration too long", func(s *models.DoctorTimeSettings) { s.SlotDurationMinutes = 121 }, false, "out_of_range"},
		{"duration lower bound", func(s *models.DoctorTimeSettings) { s.SlotDurationMinutes = 10 }, true, ""},
		{"duration upper bound", func(s *models.DoctorTimeSettings) { s.SlotDurationMinutes = 120 }, true, ""},
		{"negative gap", func(s *models.DoctorTimeSettings) { s.GapMinutes = -1 }, false, "out_of_range"},
		{"gap too long", func(s *models.DoctorTimeSettings) { s.GapMinutes = 61 }, false, "out_of_range"},
		{"zero gap allowed", func(s *models.DoctorTimeSettings) { s.GapMinutes = 0 }, true, ""},
		{"zero cap", func(s *models.DoctorTimeSettings) { s.MaxDailySlots = 0 }, false, "out_of_range"},
		{"cap too high", func(s *models.DoctorTimeSettings) { s.MaxDailySlots = 101 }, false, "out_of_range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)
			err := ValidateConfig(nil, nil, s)
			if tt.wantOK {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, tt.wantCode, err.Code)
			}
		})
	}
}
