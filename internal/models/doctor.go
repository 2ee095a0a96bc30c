package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID string `gorm:"size:36;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	FirstName            string `gorm:"size:100;not null" json:"first_name"`
	LastName             string `gorm:"size:100;not null" json:"last_name"`
	Specialization       string `gorm:"size:100;index" json:"specialization"`
	MedicalLicenseNumber string `gorm:"size:50" json:"medical_license_number"`
	PhoneNumber          string `gorm:"size:20" json:"phone_number"`
	Email                string `gorm:"size:100" json:"email"`

	Bio               string  `gorm:"type:text" json:"bio"`
	YearsOfExperience int     `json:"years_of_experience"`
	Rating            float64 `json:"rating"`
	ReviewCount       int     `json:"review_count"`
	ProfilePictureURL *string `gorm:"size:512" json:"profile_picture_url"`

	// IsAvailable is the doctor's own on/off toggle; IsActive is the
	// platform-level flag. Both must hold for the doctor to be bookable.
	IsAvailable bool `gorm:"default:true" json:"is_available"`
	IsActive    bool `gorm:"default:true" json:"is_active"`

	OffersVoiceCall bool `gorm:"default:false" json:"offers_voice_call"`
	OffersVideoCall bool `gorm:"default:false" json:"offers_video_call"`
	OffersInPerson  bool `gorm:"default:false" json:"offers_in_person"`

	ConsultationFee int64 `json:"consultation_fee"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
