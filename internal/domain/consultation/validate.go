package consultation

import (
	"time"

	"github.com/snappdoctor/telemed-api/internal/domain/schedule"
	"github.com/snappdoctor/telemed-api/internal/models"
	"github.com/snappdoctor/telemed-api/internal/timeslot"
	"github.com/snappdoctor/telemed-api/internal/timezone"
)

// Global service window. Consultations never start outside it, whatever
// a doctor's own schedule says.
var ServiceHours = timeslot.Interval{Start: 8 * 60, End: 20 * 60}

// ===============================
// Booking rejections
// ===============================

type RejectReason string

const (
	ReasonDoctorUnavailable  RejectReason = "doctor_unavailable"
	ReasonModalityNotOffered RejectReason = "modality_not_offered"
	ReasonPastOrPresentTime  RejectReason = "past_or_present_time"
	ReasonOutsideServiceHour RejectReason = "outside_service_hours"
	ReasonSlotUnavailable    RejectReason = "slot_unavailable"
)

// BookingError is a user-presentable booking rejection.
type BookingError struct {
	Reason  RejectReason `json:"reason"`
	Message string       `json:"message"`
}

func (e *BookingError) Error() string {
	return string(e.Reason)
}

func reject(reason RejectReason, message string) *BookingError {
	return &BookingError{Reason: reason, Message: message}
}

// ===============================
// Validator
// ===============================

// offered reports whether the profile's doctor accepts the given
// channel. Text chat is always offered.
func offered(p schedule.Profile, t Type) bool {
	switch t {
	case TypeVoiceCall:
		return p.OffersVoiceCall
	case TypeVideoCall:
		return p.OffersVideoCall
	case TypeInPerson:
		return p.OffersInPerson
	}
	return true
}

// BusyIntervals converts the day's slot-occupying consultations into
// time-of-day intervals of the profile's slot duration. Stored
// timestamps arrive in whatever location the driver picked, so both
// sides are normalized to the platform zone before comparing.
func BusyIntervals(existing []models.Consultation, date time.Time, durationMinutes int) []timeslot.Interval {
	y, m, d := date.In(timezone.Location()).Date()
	var out []timeslot.Interval
	for _, c := range existing {
		if !Status(c.Status).Occupies() {
			continue
		}
		at := c.ScheduledAt.In(timezone.Location())
		cy, cm, cd := at.Date()
		if cy != y || cm != m || cd != d {
			continue
		}
		start := timeslot.MinuteOfDay(at)
		out = append(out, timeslot.Interval{Start: start, End: start + durationMinutes})
	}
	return out
}

// ValidateBooking runs the booking checks in order; the first failure
// wins. A nil return clears the caller to persist a pending
// consultation.
func ValidateBooking(
	p schedule.Profile,
	doctorAvailable bool,
	requestedAt time.Time,
	ctype Type,
	existing []models.Consultation,
	now time.Time,
) *BookingError {

	requestedAt = requestedAt.In(timezone.Location())

	if !doctorAvailable {
		return reject(ReasonDoctorUnavailable, "the selected doctor is not accepting consultations")
	}

	if !offered(p, ctype) {
		return reject(ReasonModalityNotOffered, "the doctor does not offer this consultation type")
	}

	if !requestedAt.After(now) {
		return reject(ReasonPastOrPresentTime, "the requested time must be in the future")
	}

	minute := timeslot.MinuteOfDay(requestedAt)
	if minute < ServiceHours.Start || minute >= ServiceHours.End {
		return reject(ReasonOutsideServiceHour, "consultations run between 08:00 and 20:00")
	}

	busy := BusyIntervals(existing, requestedAt, p.Settings.SlotDurationMinutes)
	for _, slot := range schedule.GenerateSlots(p, requestedAt, busy) {
		if slot.Booked {
			continue
		}
		if slot.Interval.Start <= minute && minute < slot.Interval.End {
			return nil
		}
	}
	return reject(ReasonSlotUnavailable, "no free slot at the requested time")
}
