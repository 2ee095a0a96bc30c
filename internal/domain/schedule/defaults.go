package schedule

import (
	"time"

	"github.com/snappdoctor/telemed-api/internal/models"
)

// Default schedule seeded the first time a doctor opens scheduling:
// 09:00-17:00 every day with Friday off, two inactive break templates
// and the default slot geometry.

func DefaultWindows(doctorID uint) []models.DoctorScheduleDay {
	windows := make([]models.DoctorScheduleDay, 0, 7)
	for day := 0; day < 7; day++ {
		windows = append(windows, models.DoctorScheduleDay{
			DoctorID:  doctorID,
			Weekday:   day,
			Active:    day != int(time.Friday),
			StartTime: "09:00",
			EndTime:   "17:00",
		})
	}
	return windows
}

func DefaultBreaks(doctorID uint) []models.DoctorBreak {
	return []models.DoctorBreak{
		{
			DoctorID:  doctorID,
			Category:  BreakLunch,
			Label:     "Lunch",
			Active:    false,
			StartTime: "12:30",
			EndTime:   "13:30",
		},
		{
			DoctorID:  doctorID,
			Category:  BreakPrayer,
			Label:     "Prayer",
			Active:    false,
			StartTime: "18:00",
			EndTime:   "18:15",
		},
	}
}

func DefaultSettings(doctorID uint) models.DoctorTimeSettings {
	return models.DoctorTimeSettings{
		DoctorID:            doctorID,
		SlotDurationMinutes: 30,
		GapMinutes:          5,
		MaxDailySlots:       20,
	}
}
