package dto

import (
	"time"

	"github.com/snappdoctor/telemed-api/internal/models"
)

type ConsultationListDTO struct {
	ID          uint      `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Fee         int64     `json:"fee"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	PatientName string    `json:"patient_name,omitempty"`
}

func ConsultationListForPatient(cs []models.Consultation) []ConsultationListDTO {
	out := make([]ConsultationListDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, ConsultationListDTO{
			ID:          c.ID,
			ScheduledAt: c.ScheduledAt,
			Type:        c.Type,
			Status:      c.Status,
			Fee:         c.Fee,
			DoctorName:  c.Doctor.FullName(),
		})
	}
	return out
}

func ConsultationListForDoctor(cs []models.Consultation) []ConsultationListDTO {
	out := make([]ConsultationListDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, ConsultationListDTO{
			ID:          c.ID,
			ScheduledAt: c.ScheduledAt,
			Type:        c.Type,
			Status:      c.Status,
			Fee:         c.Fee,
			PatientName: c.User.FullName(),
		})
	}
	return out
}
