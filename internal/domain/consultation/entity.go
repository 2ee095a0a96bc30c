package consultation

import (
	"time"

	"github.com/snappdoctor/telemed-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(c *models.Consultation) error {
	if err := CanCancel(Status(c.Status)); err != nil {
		return err
	}
	c.Status = string(StatusCancelled)
	return nil
}

func Confirm(c *models.Consultation) error {
	if err := CanConfirm(Status(c.Status)); err != nil {
		return err
	}
	c.Status = string(StatusConfirmed)
	return nil
}

func Start(c *models.Consultation, now time.Time) error {
	if err := CanStart(Status(c.Status)); err != nil {
		return err
	}
	c.Status = string(StatusInProgress)
	c.StartedAt = &now
	return nil
}

func Complete(c *models.Consultation, now time.Time) error {
	if err := CanComplete(Status(c.Status)); err != nil {
		return err
	}
	c.Status = string(StatusCompleted)
	c.EndedAt = &now
	return nil
}

func MarkNoShow(c *models.Consultation) error {
	if err := CanMarkNoShow(Status(c.Status)); err != nil {
		return err
	}
	c.Status = string(StatusNoShow)
	return nil
}
