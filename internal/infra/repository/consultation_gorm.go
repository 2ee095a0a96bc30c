package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/snappdoctor/telemed-api/internal/domain/consultation"
	"github.com/snappdoctor/telemed-api/internal/models"
)

type ConsultationGormRepository struct {
	db *gorm.DB
}

func NewConsultationGormRepository(db *gorm.DB) *ConsultationGormRepository {
	return &ConsultationGormRepository{db: db}
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *ConsultationGormRepository) GetDoctor(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// --------------------------------------------------
// Consultation
// --------------------------------------------------

func (r *ConsultationGormRepository) Create(
	ctx context.Context,
	c *models.Consultation,
) error {

	err := r.db.WithContext(ctx).Create(c).Error
	if err == nil {
		return nil
	}

	// The partial unique index on (doctor_id, scheduled_at) for active
	// statuses fires when two requests raced for the same slot.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrSlotTaken
	}
	return err
}

func (r *ConsultationGormRepository) GetForUser(
	ctx context.Context,
	id uint,
	userID string,
) (*models.Consultation, error) {

	var c models.Consultation
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("id = ? AND user_id = ?", id, userID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConsultationGormRepository) GetForDoctor(
	ctx context.Context,
	id uint,
	doctorID uint,
) (*models.Consultation, error) {

	var c models.Consultation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND doctor_id = ?", id, doctorID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConsultationGormRepository) Update(
	ctx context.Context,
	c *models.Consultation,
) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ConsultationGormRepository) ListForUser(
	ctx context.Context,
	userID string,
) ([]models.Consultation, error) {

	var cs []models.Consultation
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *ConsultationGormRepository) ListForDoctorBetween(
	ctx context.Context,
	doctorID uint,
	start time.Time,
	end time.Time,
) ([]models.Consultation, error) {

	var cs []models.Consultation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where(
			"doctor_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
			doctorID, start, end,
		).
		Order("scheduled_at ASC").
		Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

// Compile-time check
var _ domain.Repository = (*ConsultationGormRepository)(nil)
