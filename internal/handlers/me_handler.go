package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snappdoctor/telemed-api/internal/domain/consultation"
	"github.com/snappdoctor/telemed-api/internal/httperr"
	"github.com/snappdoctor/telemed-api/internal/httpresp"
	"github.com/snappdoctor/telemed-api/internal/middleware"
	"github.com/snappdoctor/telemed-api/internal/models"
	"github.com/snappdoctor/telemed-api/internal/storage"
	"github.com/snappdoctor/telemed-api/internal/timezone"
)

// maxPictureBytes caps the accepted upload size before decoding.
const maxPictureBytes = 5 << 20

// ======================================================
// HANDLER
// ======================================================

type MeHandler struct {
	db       *gorm.DB
	pictures *storage.PictureStore
}

func NewMeHandler(db *gorm.DB, pictures *storage.PictureStore) *MeHandler {
	return &MeHandler{db: db, pictures: pictures}
}

// ======================================================
// PROFILE
// ======================================================

func (h *MeHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, "id = ?", userID).Error; err != nil {
		respondError(c, err)
		return
	}

	out := gin.H{"user": user}

	var doctor models.Doctor
	err := h.db.WithContext(c.Request.Context()).First(&doctor, "user_id = ?", userID).Error
	if err == nil {
		out["doctor"] = doctor
	}

	httpresp.OK(c, out)
}

func (h *MeHandler) UploadPicture(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	file, err := c.FormFile("picture")
	if err != nil {
		httperr.BadRequest(c, "missing_picture", "Send the image in the 'picture' form field.")
		return
	}
	if file.Size > maxPictureBytes {
		httperr.BadRequest(c, "picture_too_large", "The image must be at most 5 MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "picture_read_failed", "Could not read the uploaded file.")
		return
	}
	defer src.Close()

	key := fmt.Sprintf("profiles/%s.webp", userID)
	url, err := h.pictures.Upload(c.Request.Context(), key, src)
	if err != nil {
		httperr.BadRequest(c, "invalid_picture", "The file must be a JPEG, PNG or GIF image.")
		return
	}

	update := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_picture_url", url)
	if update.Error != nil {
		respondError(c, update.Error)
		return
	}

	// Doctors show the same picture on their public card. The user row
	// already holds the URL, so a failed mirror is logged, not fatal.
	mirror := h.db.WithContext(c.Request.Context()).
		Model(&models.Doctor{}).
		Where("user_id = ?", userID).
		Update("profile_picture_url", url)
	if mirror.Error != nil {
		log.Printf("profile picture mirror failed for user %s: %v", userID, mirror.Error)
	}

	c.JSON(http.StatusOK, gin.H{"profile_picture_url": url})
}

// ======================================================
// DOCTOR PROFILE
// ======================================================

type UpdateDoctorProfileRequest struct {
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	Specialization    *string `json:"specialization"`
	Bio               *string `json:"bio"`
	YearsOfExperience *int    `json:"years_of_experience"`
	Email             *string `json:"email"`
}

func (h *MeHandler) UpdateDoctorProfile(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextDoctorID).(uint)

	var doctor models.Doctor
	if err := h.db.WithContext(c.Request.Context()).First(&doctor, doctorID).Error; err != nil {
		respondError(c, err)
		return
	}

	var req UpdateDoctorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.FirstName != nil {
		doctor.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		doctor.LastName = *req.LastName
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Bio != nil {
		doctor.Bio = *req.Bio
	}
	if req.YearsOfExperience != nil {
		if *req.YearsOfExperience < 0 {
			httperr.BadRequest(c, "invalid_experience", "Years of experience must be zero or positive.")
			return
		}
		doctor.YearsOfExperience = *req.YearsOfExperience
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Could not save the doctor profile.")
		return
	}

	httpresp.OK(c, doctor)
}

// ======================================================
// DOCTOR DASHBOARD
// ======================================================

// Dashboard returns today's workload counts for the doctor's home
// screen.
func (h *MeHandler) Dashboard(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextDoctorID).(uint)

	dayStart, dayEnd := timezone.DayBounds(timezone.Now())

	base := func() *gorm.DB {
		return h.db.WithContext(c.Request.Context()).
			Model(&models.Consultation{}).
			Where("doctor_id = ?", doctorID)
	}

	var today, pending, completed int64

	if err := base().
		Where("scheduled_at >= ? AND scheduled_at < ?", dayStart, dayEnd).
		Count(&today).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Could not load dashboard counts.")
		return
	}

	if err := base().
		Where("status = ?", consultation.StatusPending).
		Count(&pending).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Could not load dashboard counts.")
		return
	}

	if err := base().
		Where("status = ?", consultation.StatusCompleted).
		Count(&completed).Error; err != nil {
		httperr.Internal(c, "dashboard_failed", "Could not load dashboard counts.")
		return
	}

	httpresp.OK(c, gin.H{
		"consultations_today": today,
		"pending_requests":    pending,
		"total_completed":     completed,
	})
}

// ======================================================
// DOCTOR AVAILABILITY
// ======================================================

type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// SetAvailability flips the doctor's instant on/off switch. The weekly
// schedule is untouched.
func (h *MeHandler) SetAvailability(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextDoctorID).(uint)

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "The is_available field is required.")
		return
	}

	update := h.db.WithContext(c.Request.Context()).
		Model(&models.Doctor{}).
		Where("id = ?", doctorID).
		Update("is_available", *req.IsAvailable)
	if update.Error != nil {
		respondError(c, update.Error)
		return
	}
	if update.RowsAffected == 0 {
		httperr.NotFound(c, "doctor_not_found", "No doctor profile for this account.")
		return
	}

	httpresp.OK(c, gin.H{"is_available": *req.IsAvailable})
}
