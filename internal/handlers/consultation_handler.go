package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/snappdoctor/telemed-api/internal/domain/consultation"
	"github.com/snappdoctor/telemed-api/internal/dto"
	"github.com/snappdoctor/telemed-api/internal/httperr"
	"github.com/snappdoctor/telemed-api/internal/httpresp"
	"github.com/snappdoctor/telemed-api/internal/middleware"
	"github.com/snappdoctor/telemed-api/internal/timezone"
	ucConsultation "github.com/snappdoctor/telemed-api/internal/usecase/consultation"
)

// ======================================================
// HANDLER
// ======================================================

type ConsultationHandler struct {
	repo domain.Repository

	book       *ucConsultation.BookConsultation
	cancel     *ucConsultation.CancelConsultation
	transition *ucConsultation.TransitionConsultation
	listMine   *ucConsultation.ListForPatient
	listByDate *ucConsultation.ListForDoctorByDate
}

func NewConsultationHandler(
	repo domain.Repository,
	book *ucConsultation.BookConsultation,
	cancel *ucConsultation.CancelConsultation,
	transition *ucConsultation.TransitionConsultation,
	listMine *ucConsultation.ListForPatient,
	listByDate *ucConsultation.ListForDoctorByDate,
) *ConsultationHandler {
	return &ConsultationHandler{
		repo:       repo,
		book:       book,
		cancel:     cancel,
		transition: transition,
		listMine:   listMine,
		listByDate: listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookConsultationRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Symptoms string `json:"symptoms"`
}

// ======================================================
// PATIENT SIDE
// ======================================================

func (h *ConsultationHandler) Book(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req BookConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctype, ok := domain.ParseType(req.Type)
	if !ok {
		httperr.BadRequest(c, "invalid_consultation_type", "Unknown consultation type.")
		return
	}

	scheduledAt, err := timezone.ParseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Use YYYY-MM-DD and HH:MM.")
		return
	}

	consultation, err := h.book.Execute(c.Request.Context(), ucConsultation.BookConsultationInput{
		UserID:      userID,
		DoctorID:    req.DoctorID,
		Type:        ctype,
		ScheduledAt: scheduledAt,
		Symptoms:    req.Symptoms,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, consultation)
}

func (h *ConsultationHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	consultations, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, dto.ConsultationListForPatient(consultations))
}

func (h *ConsultationHandler) GetMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_consultation_id", "The consultation id must be numeric.")
		return
	}

	consultation, err := h.repo.GetForUser(c.Request.Context(), uint(id), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, consultation)
}

func (h *ConsultationHandler) CancelMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_consultation_id", "The consultation id must be numeric.")
		return
	}

	consultation, err := h.cancel.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, consultation)
}

// ======================================================
// DOCTOR SIDE
// ======================================================

func (h *ConsultationHandler) ListByDate(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextDoctorID).(uint)

	date, err := timezone.ParseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "The date must use the YYYY-MM-DD format.")
		return
	}

	consultations, err := h.listByDate.Execute(c.Request.Context(), doctorID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, dto.ConsultationListForDoctor(consultations))
}

func (h *ConsultationHandler) Confirm(c *gin.Context)  { h.applyAction(c, ucConsultation.ActionConfirm) }
func (h *ConsultationHandler) Start(c *gin.Context)    { h.applyAction(c, ucConsultation.ActionStart) }
func (h *ConsultationHandler) Complete(c *gin.Context) { h.applyAction(c, ucConsultation.ActionComplete) }
func (h *ConsultationHandler) NoShow(c *gin.Context)   { h.applyAction(c, ucConsultation.ActionNoShow) }

func (h *ConsultationHandler) applyAction(c *gin.Context, action ucConsultation.Action) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	doctorID := c.MustGet(middleware.ContextDoctorID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_consultation_id", "The consultation id must be numeric.")
		return
	}

	consultation, err := h.transition.Execute(c.Request.Context(), userID, doctorID, uint(id), action)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, consultation)
}
