package models

import "time"

type Consultation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID string `gorm:"size:36;index;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	DoctorID uint   `gorm:"index;not null" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	Type   string `gorm:"size:20;not null" json:"type"`
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ScheduledAt time.Time  `gorm:"index" json:"scheduled_at"`
	StartedAt   *time.Time `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at"`

	PatientSymptoms string  `gorm:"type:text" json:"patient_symptoms"`
	DoctorNotes     *string `gorm:"type:text" json:"doctor_notes"`
	Prescription    *string `gorm:"type:text" json:"prescription"`

	Fee    int64 `json:"fee"`
	IsPaid bool  `gorm:"default:false" json:"is_paid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
