package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/snappdoctor/telemed-api/internal/config"
	"github.com/snappdoctor/telemed-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.DoctorScheduleDay{},
		&models.DoctorBreak{},
		&models.DoctorTimeSettings{},
		&models.Consultation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Two concurrent bookings can both validate against the same free
	// slot; this index makes the second insert fail instead.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_consultations_active_slot
        ON consultations (doctor_id, scheduled_at)
        WHERE status IN ('pending', 'confirmed', 'in_progress')
    `)

	return db
}
