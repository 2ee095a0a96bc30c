package consultation

import "github.com/snappdoctor/telemed-api/internal/httperr"

// ===============================
// Consultation Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func InitialStatus() Status {
	return StatusPending
}

// Occupies reports whether a consultation in this status still holds
// its slot. Cancelled and no-show consultations free the slot.
func (s Status) Occupies() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

// OccupyingStatuses lists the statuses that block a slot, for query
// building.
func OccupyingStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusConfirmed),
		string(StatusInProgress),
	}
}

// ===============================
// Transitions
// ===============================

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusinessMsg("invalid_state", "Only pending or confirmed consultations can be cancelled.")
	}
	return nil
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusinessMsg("invalid_state", "Only pending consultations can be confirmed.")
	}
	return nil
}

func CanStart(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusinessMsg("invalid_state", "Only confirmed consultations can be started.")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusInProgress {
		return httperr.ErrBusinessMsg("invalid_state", "Only in-progress consultations can be completed.")
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusinessMsg("invalid_state", "Only confirmed consultations can be marked as no-show.")
	}
	return nil
}
