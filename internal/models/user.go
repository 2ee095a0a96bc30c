package models

import "time"

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`

	PhoneNumber    string `gorm:"size:20;uniqueIndex;not null" json:"phone_number"`
	PhoneConfirmed bool   `gorm:"default:false" json:"phone_confirmed"`
	PasswordHash   string `gorm:"size:255;not null" json:"-"`

	IsActive          bool    `gorm:"default:true" json:"is_active"`
	ProfilePictureURL *string `gorm:"size:512" json:"profile_picture_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
