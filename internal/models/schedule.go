package models

import "time"

// DoctorScheduleDay is a doctor's recurring working window for one
// weekday (0 = Sunday .. 6 = Saturday). At most one row exists per
// (doctor, weekday); the whole set is replaced on every schedule edit.
type DoctorScheduleDay struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"index;not null" json:"doctor_id"`

	Weekday   int    `json:"weekday"`
	Active    bool   `json:"active"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DoctorBreak is a recurring daily exclusion interval. Breaks are not
// tied to a weekday; an active break applies on every working day.
type DoctorBreak struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"index;not null" json:"doctor_id"`

	Category  string `gorm:"size:20;not null" json:"category"`
	Label     string `gorm:"size:100" json:"label"`
	Active    bool   `json:"active"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DoctorTimeSettings holds per-doctor slot geometry. One row per
// doctor, upserted on schedule edits.
type DoctorTimeSettings struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"uniqueIndex;not null" json:"doctor_id"`

	SlotDurationMinutes int `gorm:"default:30" json:"slot_duration_minutes"`
	GapMinutes          int `gorm:"default:5" json:"gap_minutes"`
	MaxDailySlots       int `gorm:"default:20" json:"max_daily_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
