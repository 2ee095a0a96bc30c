package schedule

import (
	"context"

	"github.com/snappdoctor/telemed-api/internal/audit"
	domain "github.com/snappdoctor/telemed-api/internal/domain/schedule"
	"github.com/snappdoctor/telemed-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type WindowInput struct {
	Weekday   int    `json:"weekday"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type BreakInput struct {
	Category  string `json:"category"`
	Label     string `json:"label"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type TimeSettingsInput struct {
	SlotDurationMinutes int `json:"slot_duration_minutes"`
	GapMinutes          int `json:"gap_minutes"`
	MaxDailySlots       int `json:"max_daily_slots"`
}

type ReplaceScheduleInput struct {
	Windows      []WindowInput     `json:"windows"`
	Breaks       []BreakInput      `json:"breaks"`
	TimeSettings TimeSettingsInput `json:"time_settings"`

	OffersVoiceCall bool  `json:"offers_voice_call"`
	OffersVideoCall bool  `json:"offers_video_call"`
	OffersInPerson  bool  `json:"offers_in_person"`
	ConsultationFee int64 `json:"consultation_fee"`
}

// ======================================================
// USE CASE
// ======================================================

type ReplaceSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReplaceSchedule(repo domain.Repository, audit *audit.Dispatcher) *ReplaceSchedule {
	return &ReplaceSchedule{repo: repo, audit: audit}
}

// Execute validates the full replacement configuration and applies it
// atomically. On a validation failure the returned error is a
// *schedule.ValidationError and no row has been touched; the prior
// schedule also survives any persistence failure intact.
func (uc *ReplaceSchedule) Execute(ctx context.Context, actorID string, doctorID uint, in ReplaceScheduleInput) error {

	windows := make([]models.DoctorScheduleDay, 0, len(in.Windows))
	for _, w := range in.Windows {
		windows = append(windows, models.DoctorScheduleDay{
			DoctorID:  doctorID,
			Weekday:   w.Weekday,
			Active:    w.Active,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}

	breaks := make([]models.DoctorBreak, 0, len(in.Breaks))
	for _, b := range in.Breaks {
		breaks = append(breaks, models.DoctorBreak{
			DoctorID:  doctorID,
			Category:  b.Category,
			Label:     b.Label,
			Active:    b.Active,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}

	settings := models.DoctorTimeSettings{
		DoctorID:            doctorID,
		SlotDurationMinutes: in.TimeSettings.SlotDurationMinutes,
		GapMinutes:          in.TimeSettings.GapMinutes,
		MaxDailySlots:       in.TimeSettings.MaxDailySlots,
	}

	if verr := domain.ValidateConfig(windows, breaks, settings); verr != nil {
		return verr
	}

	flags := domain.ModalityFlags{
		OffersVoiceCall: in.OffersVoiceCall,
		OffersVideoCall: in.OffersVideoCall,
		OffersInPerson:  in.OffersInPerson,
	}

	if err := uc.repo.ReplaceSchedule(ctx, doctorID, windows, breaks, settings, flags, in.ConsultationFee); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		DoctorID: &doctorID,
		Action:   "schedule_updated",
		Entity:   "schedule",
	})

	return nil
}
