package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	consultdomain "github.com/snappdoctor/telemed-api/internal/domain/consultation"
	scheduledomain "github.com/snappdoctor/telemed-api/internal/domain/schedule"
	"github.com/snappdoctor/telemed-api/internal/httperr"
)

// respondError maps domain and infrastructure errors onto the HTTP
// surface, keeping every rejection reason discriminable for the client.
func respondError(c *gin.Context, err error) {
	var verr *scheduledomain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_failed",
			"field":   verr.Field,
			"code":    verr.Code,
			"message": verr.Message,
		})
		return
	}

	var berr *consultdomain.BookingError
	if errors.As(err, &berr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "booking_rejected",
			"reason":  berr.Reason,
			"message": berr.Message,
		})
		return
	}

	var busErr httperr.BusinessError
	if errors.As(err, &busErr) {
		httperr.Conflict(c, busErr.Code, busErr.Message)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "The requested resource does not exist.")
		return
	}

	httperr.Internal(c, "internal_error", "Something went wrong.")
}
