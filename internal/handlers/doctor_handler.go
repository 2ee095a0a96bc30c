package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snappdoctor/telemed-api/internal/dto"
	"github.com/snappdoctor/telemed-api/internal/httperr"
	"github.com/snappdoctor/telemed-api/internal/httpresp"
	"github.com/snappdoctor/telemed-api/internal/models"
	"github.com/snappdoctor/telemed-api/internal/timezone"
	ucSchedule "github.com/snappdoctor/telemed-api/internal/usecase/schedule"
)

// DoctorHandler serves the public discovery surface: doctor listings,
// details and the per-date slot calendar.
type DoctorHandler struct {
	db        *gorm.DB
	listSlots *ucSchedule.ListSlots
}

func NewDoctorHandler(db *gorm.DB, listSlots *ucSchedule.ListSlots) *DoctorHandler {
	return &DoctorHandler{db: db, listSlots: listSlots}
}

func (h *DoctorHandler) List(c *gin.Context) {
	q := h.db.Where("is_active = ?", true)

	if spec := c.Query("specialization"); spec != "" {
		q = q.Where("specialization = ?", spec)
	} else {
		q = q.Where("is_available = ?", true)
	}

	var doctors []models.Doctor
	if err := q.Order("rating DESC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not load doctors.")
		return
	}

	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Specializations(c *gin.Context) {
	var specs []string
	if err := h.db.Model(&models.Doctor{}).
		Where("is_active = ? AND specialization <> ''", true).
		Distinct().
		Pluck("specialization", &specs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_specializations", "Could not load specializations.")
		return
	}

	httpresp.List(c, specs)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "The doctor id must be numeric.")
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, uint(id)).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, doctor)
}

// Slots returns the doctor's derived calendar for one date with each
// slot marked booked or free.
func (h *DoctorHandler) Slots(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "The doctor id must be numeric.")
		return
	}

	date, err := timezone.ParseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "The date must use the YYYY-MM-DD format.")
		return
	}

	slots, err := h.listSlots.Execute(c.Request.Context(), uint(id), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  c.Query("date"),
		"slots": dto.SlotsFromDomain(slots),
	})
}
