package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/snappdoctor/telemed-api/internal/domain/schedule"
	"github.com/snappdoctor/telemed-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ScheduleGormRepository) GetProfile(
	ctx context.Context,
	doctorID uint,
) (*domain.Profile, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, doctorID).Error; err != nil {
		return nil, err
	}

	windows, err := r.ListWindows(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	breaks, err := r.ListBreaks(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	settings, err := r.GetSettings(ctx, doctorID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// A doctor who never opened scheduling still gets the default
		// slot geometry.
		def := domain.DefaultSettings(doctorID)
		settings = &def
	}

	return &domain.Profile{
		DoctorID:        doctorID,
		Windows:         windows,
		Breaks:          breaks,
		Settings:        *settings,
		OffersVoiceCall: doctor.OffersVoiceCall,
		OffersVideoCall: doctor.OffersVideoCall,
		OffersInPerson:  doctor.OffersInPerson,
		ConsultationFee: doctor.ConsultationFee,
	}, nil
}

func (r *ScheduleGormRepository) ListWindows(
	ctx context.Context,
	doctorID uint,
) ([]models.DoctorScheduleDay, error) {

	var windows []models.DoctorScheduleDay
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("weekday ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *ScheduleGormRepository) ListBreaks(
	ctx context.Context,
	doctorID uint,
) ([]models.DoctorBreak, error) {

	var breaks []models.DoctorBreak
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("start_time ASC").
		Find(&breaks).Error; err != nil {
		return nil, err
	}
	return breaks, nil
}

func (r *ScheduleGormRepository) GetSettings(
	ctx context.Context,
	doctorID uint,
) (*models.DoctorTimeSettings, error) {

	var settings models.DoctorTimeSettings
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *ScheduleGormRepository) HasSchedule(
	ctx context.Context,
	doctorID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DoctorScheduleDay{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *ScheduleGormRepository) SeedDefaults(
	ctx context.Context,
	doctorID uint,
	windows []models.DoctorScheduleDay,
	breaks []models.DoctorBreak,
	settings models.DoctorTimeSettings,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(windows) > 0 {
			if err := tx.Create(&windows).Error; err != nil {
				return err
			}
		}
		if len(breaks) > 0 {
			if err := tx.Create(&breaks).Error; err != nil {
				return err
			}
		}
		return tx.Create(&settings).Error
	})
}

func (r *ScheduleGormRepository) ReplaceSchedule(
	ctx context.Context,
	doctorID uint,
	windows []models.DoctorScheduleDay,
	breaks []models.DoctorBreak,
	settings models.DoctorTimeSettings,
	flags domain.ModalityFlags,
	fee int64,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.Doctor{}).
			Where("id = ?", doctorID).
			Updates(map[string]any{
				"offers_voice_call": flags.OffersVoiceCall,
				"offers_video_call": flags.OffersVideoCall,
				"offers_in_person":  flags.OffersInPerson,
				"consultation_fee":  fee,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("doctor_id = ?", doctorID).
			Delete(&models.DoctorScheduleDay{}).Error; err != nil {
			return err
		}
		if len(windows) > 0 {
			if err := tx.Create(&windows).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("doctor_id = ?", doctorID).
			Delete(&models.DoctorBreak{}).Error; err != nil {
			return err
		}
		if len(breaks) > 0 {
			if err := tx.Create(&breaks).Error; err != nil {
				return err
			}
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "doctor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"slot_duration_minutes",
				"gap_minutes",
				"max_daily_slots",
				"updated_at",
			}),
		}).Create(&settings).Error
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
