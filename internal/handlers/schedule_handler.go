package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snappdoctor/telemed-api/internal/httperr"
	"github.com/snappdoctor/telemed-api/internal/middleware"
	ucSchedule "github.com/snappdoctor/telemed-api/internal/usecase/schedule"
)

// ScheduleHandler is the doctor-facing schedule editor surface.
type ScheduleHandler struct {
	getSchedule     *ucSchedule.GetSchedule
	replaceSchedule *ucSchedule.ReplaceSchedule
}

func NewScheduleHandler(
	getSchedule *ucSchedule.GetSchedule,
	replaceSchedule *ucSchedule.ReplaceSchedule,
) *ScheduleHandler {
	return &ScheduleHandler{
		getSchedule:     getSchedule,
		replaceSchedule: replaceSchedule,
	}
}

// Get returns the full editor payload, seeding the default schedule on
// a doctor's first visit.
func (h *ScheduleHandler) Get(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextDoctorID).(uint)

	profile, err := h.getSchedule.Execute(c.Request.Context(), doctorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"windows": profile.Windows,
		"breaks":  profile.Breaks,
		"time_settings": gin.H{
			"slot_duration_minutes": profile.Settings.SlotDurationMinutes,
			"gap_minutes":           profile.Settings.GapMinutes,
			"max_daily_slots":       profile.Settings.MaxDailySlots,
		},
		"offers_voice_call": profile.OffersVoiceCall,
		"offers_video_call": profile.OffersVideoCall,
		"offers_in_person":  profile.OffersInPerson,
		"consultation_fee":  profile.ConsultationFee,
	})
}

// Update replaces the whole schedule configuration atomically.
func (h *ScheduleHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	doctorID := c.MustGet(middleware.ContextDoctorID).(uint)

	var req ucSchedule.ReplaceScheduleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.replaceSchedule.Execute(c.Request.Context(), userID, doctorID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
