package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/snappdoctor/telemed-api/internal/config"
	"github.com/snappdoctor/telemed-api/internal/httperr"
	"github.com/snappdoctor/telemed-api/internal/middleware"
	"github.com/snappdoctor/telemed-api/internal/models"
	"github.com/snappdoctor/telemed-api/internal/otp"
	"github.com/snappdoctor/telemed-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	otp    *otp.Service
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, otpSvc *otp.Service) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, otp: otpSvc}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Code        string `json:"code" binding:"required,len=4"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type ResendOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsMobileNumberValid(req.PhoneNumber) {
		httperr.BadRequest(c, "invalid_phone_number", "The phone number must look like 09xxxxxxxxx.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("phone_number = ?", req.PhoneNumber).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "phone_already_registered", "A user with this phone number already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	if err := h.otp.Issue(c.Request.Context(), otp.PurposeRegistration, user.PhoneNumber); err != nil {
		httperr.Internal(c, "failed_to_send_otp", "Could not deliver the verification code.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "verification code sent",
		"user_id": user.ID,
	})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.Where("phone_number = ?", req.PhoneNumber).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "No account matches this phone number.")
		return
	}

	purpose := otp.PurposeLogin
	if !user.PhoneConfirmed {
		purpose = otp.PurposeRegistration
	}

	if err := h.otp.Verify(c.Request.Context(), purpose, req.PhoneNumber, req.Code); err != nil {
		if httperr.IsBusiness(err, "invalid_otp") {
			httperr.BadRequest(c, "invalid_otp", "The verification code is wrong or expired.")
			return
		}
		httperr.Internal(c, "failed_to_verify_otp", "Could not verify the code.")
		return
	}

	if !user.PhoneConfirmed {
		user.PhoneConfirmed = true
		if err := h.db.Model(&user).Update("phone_confirmed", true).Error; err != nil {
			httperr.Internal(c, "failed_to_confirm_phone", "Could not confirm the phone number.")
			return
		}
	}

	h.respondWithToken(c, &user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.Where("phone_number = ?", req.PhoneNumber).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Phone number or password is wrong.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Phone number or password is wrong.")
		return
	}

	if !user.PhoneConfirmed {
		httperr.Unauthorized(c, "phone_not_confirmed", "The phone number has not been confirmed yet.")
		return
	}

	if !user.IsActive {
		httperr.Unauthorized(c, "account_disabled", "The account is disabled.")
		return
	}

	h.respondWithToken(c, &user)
}

func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.Where("phone_number = ?", req.PhoneNumber).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "No account matches this phone number.")
		return
	}

	purpose := otp.PurposeLogin
	if !user.PhoneConfirmed {
		purpose = otp.PurposeRegistration
	}

	if err := h.otp.Issue(c.Request.Context(), purpose, user.PhoneNumber); err != nil {
		httperr.Internal(c, "failed_to_send_otp", "Could not deliver the verification code.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

// --------- Token ---------

func (h *AuthHandler) respondWithToken(c *gin.Context, user *models.User) {
	role := middleware.RolePatient
	var doctorID *uint

	var doctor models.Doctor
	if err := h.db.Where("user_id = ?", user.ID).First(&doctor).Error; err == nil {
		role = middleware.RoleDoctor
		doctorID = &doctor.ID
	}

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
	}
	if doctorID != nil {
		claims["doctorId"] = *doctorID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate the session token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"id":           user.ID,
			"first_name":   user.FirstName,
			"last_name":    user.LastName,
			"phone_number": user.PhoneNumber,
			"role":         role,
		},
	})
}
