package schedule

import (
	"fmt"

	"github.com/snappdoctor/telemed-api/internal/models"
	"github.com/snappdoctor/telemed-api/internal/timeslot"
)

const (
	MinSlotDurationMinutes = 10
	MaxSlotDurationMinutes = 120
	MinGapMinutes          = 0
	MaxGapMinutes          = 60
	MinDailySlots          = 1
	MaxDailySlots          = 100
)

const (
	BreakLunch  = "lunch"
	BreakPrayer = "prayer"
	BreakCustom = "custom"
)

// ValidationError pins a schedule-edit rejection to the field that
// violated a rule, so the caller can surface field-level feedback.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Code)
}

func invalid(field, code, message string) *ValidationError {
	return &ValidationError{Field: field, Code: code, Message: message}
}

// ValidateConfig checks a full replacement schedule before any row is
// touched. The first violated rule wins.
func ValidateConfig(
	windows []models.DoctorScheduleDay,
	breaks []models.DoctorBreak,
	settings models.DoctorTimeSettings,
) *ValidationError {

	seen := map[int]bool{}
	for i, w := range windows {
		field := fmt.Sprintf("windows[%d]", i)

		if w.Weekday < 0 || w.Weekday > 6 {
			return invalid(field+".weekday", "invalid_weekday", "weekday must be between 0 and 6")
		}
		if seen[w.Weekday] {
			return invalid(field+".weekday", "duplicate_weekday", "only one window per weekday is allowed")
		}
		seen[w.Weekday] = true

		iv, err := timeslot.New(w.StartTime, w.EndTime)
		if err != nil {
			return invalid(field, "invalid_time", "times must use the HH:MM format")
		}
		if !iv.Valid() {
			return invalid(field, "inverted_interval", "start time must be before end time")
		}
	}

	for i, b := range breaks {
		field := fmt.Sprintf("breaks[%d]", i)

		switch b.Category {
		case BreakLunch, BreakPrayer, BreakCustom:
		default:
			return invalid(field+".category", "invalid_category", "category must be lunch, prayer or custom")
		}

		iv, err := timeslot.New(b.StartTime, b.EndTime)
		if err != nil {
			return invalid(field, "invalid_time", "times must use the HH:MM format")
		}
		if !iv.Valid() {
			return invalid(field, "inverted_interval", "start time must be before end time")
		}
	}

	if settings.SlotDurationMinutes < MinSlotDurationMinutes || settings.SlotDurationMinutes > MaxSlotDurationMinutes {
		return invalid("time_settings.slot_duration_minutes", "out_of_range",
			fmt.Sprintf("slot duration must be between %d and %d minutes", MinSlotDurationMinutes, MaxSlotDurationMinutes))
	}
	if settings.GapMinutes < MinGapMinutes || settings.GapMinutes > MaxGapMinutes {
		return invalid("time_settings.gap_minutes", "out_of_range",
			fmt.Sprintf("gap must be between %d and %d minutes", MinGapMinutes, MaxGapMinutes))
	}
	if settings.MaxDailySlots < MinDailySlots || settings.MaxDailySlots > MaxDailySlots {
		return invalid("time_settings.max_daily_slots", "out_of_range",
			fmt.Sprintf("daily slot cap must be between %d and %d", MinDailySlots, MaxDailySlots))
	}

	return nil
}
