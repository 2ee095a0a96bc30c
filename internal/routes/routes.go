package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/snappdoctor/telemed-api/internal/audit"
	"github.com/snappdoctor/telemed-api/internal/config"
	"github.com/snappdoctor/telemed-api/internal/handlers"
	infraRepo "github.com/snappdoctor/telemed-api/internal/infra/repository"
	"github.com/snappdoctor/telemed-api/internal/middleware"
	"github.com/snappdoctor/telemed-api/internal/otp"
	"github.com/snappdoctor/telemed-api/internal/storage"
	ucConsultation "github.com/snappdoctor/telemed-api/internal/usecase/consultation"
	ucSchedule "github.com/snappdoctor/telemed-api/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	consultationRepo := infraRepo.NewConsultationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	otpService := otp.NewService(rdb, otp.LogSender{})

	pictureStore := storage.NewPictureStore(storage.S3Config{
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})

	// ======================================================
	// 🧠 USE CASES — SCHEDULE
	// ======================================================
	getScheduleUC := ucSchedule.NewGetSchedule(scheduleRepo)

	replaceScheduleUC := ucSchedule.NewReplaceSchedule(
		scheduleRepo,
		auditDispatcher,
	)

	listSlotsUC := ucSchedule.NewListSlots(scheduleRepo, consultationRepo)

	// ======================================================
	// 🧠 USE CASES — CONSULTATIONS
	// ======================================================
	bookConsultationUC := ucConsultation.NewBookConsultation(
		consultationRepo,
		scheduleRepo,
		auditDispatcher,
	)

	cancelConsultationUC := ucConsultation.NewCancelConsultation(
		consultationRepo,
		auditDispatcher,
	)

	transitionConsultationUC := ucConsultation.NewTransitionConsultation(
		consultationRepo,
		auditDispatcher,
	)

	listForPatientUC := ucConsultation.NewListForPatient(consultationRepo)
	listForDoctorByDateUC := ucConsultation.NewListForDoctorByDate(consultationRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, otpService)
	meHandler := handlers.NewMeHandler(db, pictureStore)
	doctorHandler := handlers.NewDoctorHandler(db, listSlotsUC)

	scheduleHandler := handlers.NewScheduleHandler(
		getScheduleUC,
		replaceScheduleUC,
	)

	consultationHandler := handlers.NewConsultationHandler(
		consultationRepo,
		bookConsultationUC,
		cancelConsultationUC,
		transitionConsultationUC,
		listForPatientUC,
		listForDoctorByDateUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/verify-otp", authHandler.VerifyOTP)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/resend-otp", authHandler.ResendOTP)

		// ------------------------------
		// 🌐 PUBLIC DISCOVERY
		// ------------------------------
		api.GET("/doctors", doctorHandler.List)
		api.GET("/doctors/specializations", doctorHandler.Specializations)
		api.GET("/doctors/:id", doctorHandler.Get)
		api.GET("/doctors/:id/slots", doctorHandler.Slots)

		// ------------------------------
		// 🔐 PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Get)
			secured.POST("/me/profile-picture", meHandler.UploadPicture)

			// ------------------------------
			// CONSULTATIONS (PATIENT)
			// ------------------------------
			secured.POST("/consultations", consultationHandler.Book)
			secured.GET("/me/consultations", consultationHandler.ListMine)
			secured.GET("/me/consultations/:id", consultationHandler.GetMine)
			secured.PATCH("/me/consultations/:id/cancel", consultationHandler.CancelMine)

			// ------------------------------
			// DOCTOR SELF-SERVICE
			// ------------------------------
			doctor := secured.Group("/me")
			doctor.Use(middleware.RequireDoctor())
			{
				doctor.GET("/schedule", scheduleHandler.Get)
				doctor.PUT("/schedule", scheduleHandler.Update)

				doctor.PATCH("/availability", meHandler.SetAvailability)
				doctor.PATCH("/doctor-profile", meHandler.UpdateDoctorProfile)
				doctor.GET("/dashboard", meHandler.Dashboard)

				doctor.GET("/appointments", consultationHandler.ListByDate)
				doctor.PATCH("/appointments/:id/confirm", consultationHandler.Confirm)
				doctor.PATCH("/appointments/:id/start", consultationHandler.Start)
				doctor.PATCH("/appointments/:id/complete", consultationHandler.Complete)
				doctor.PATCH("/appointments/:id/no-show", consultationHandler.NoShow)

				doctor.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
