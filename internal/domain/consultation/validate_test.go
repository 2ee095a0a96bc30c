package consultation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snappdoctor/telemed-api/internal/domain/schedule"
	"github.com/snappdoctor/telemed-api/internal/models"
	"github.com/snappdoctor/telemed-api/internal/timezone"
)

var now = time.Date(2026, 9, 1, 10, 0, 0, 0, timezone.Location())

func bookableProfile() schedule.Profile {
	p := schedule.Profile{
		DoctorID:        1,
		OffersVoiceCall: true,
		OffersVideoCall: false,
		OffersInPerson:  true,
		ConsultationFee: 100000,
		Settings: models.DoctorTimeSettings{
			DoctorID:            1,
			SlotDurationMinutes: 30,
			GapMinutes:          5,
			MaxDailySlots:       20,
		},
	}
	for day := 0; day < 7; day++ {
		p.Windows = append(p.Windows, models.DoctorScheduleDay{
			DoctorID:  1,
			Weekday:   day,
			Active:    day != int(time.Friday),
			StartTime: "09:00",
			EndTime:   "17:00",
		})
	}
	return p
}

// at builds a timestamp on the Saturday after the fixed now.
func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 5, hour, minute, 0, 0, timezone.Location())
}

func TestValidateBookingAccepted(t *testing.T) {
	err := ValidateBooking(bookableProfile(), true, at(9, 35), TypeVoiceCall, nil, now)
	assert.Nil(t, err)
}

func TestValidateBookingDoctorUnavailable(t *testing.T) {
	err := ValidateBooking(bookableProfile(), false, at(9, 35), TypeTextChat, nil, now)
	require.NotNil(t, err)
	assert.Equal(t, ReasonDoctorUnavailable, err.Reason)
}

func TestValidateBookingModalityNotOffered(t *testing.T) {
	err := ValidateBooking(bookableProfile(), true, at(9, 35), TypeVideoCall, nil, now)
	require.NotNil(t, err)
	assert.Equal(t, ReasonModalityNotOffered, err.Reason)
}

func TestValidateBookingTextChatAlwaysOffered(t *testing.T) {
	p := bookableProfile()
	p.OffersVoiceCall = false
	p.OffersInPerson = false
	assert.Nil(t, ValidateBooking(p, true, at(9, 0), TypeTextChat, nil, now))
}

func TestValidateBookingPastTime(t *testing.T) {
	past := now.Add(-24 * time.Hour)
	err := ValidateBooking(bookableProfile(), true, past, TypeTextChat, nil, now)
	require.NotNil(t, err)
	assert.Equal(t, ReasonPastOrPresentTime, err.Reason)

	err = ValidateBooking(bookableProfile(), true, now, TypeTextChat, nil, now)
	require.NotNil(t, err)
	assert.Equal(t, ReasonPastOrPresentTime, err.Reason)
}

func TestValidateBookingOutsideServiceHours(t *testing.T) {
	err := ValidateBooking(bookableProfile(), true, at(7, 30), TypeTextChat, nil, now)
	require.NotNil(t, err)
	assert.Equal(t, ReasonOutsideServiceHour, err.Reason)

	err = ValidateBooking(bookableProfile(), true, at(20, 0), TypeTextChat, nil, now)
	require.NotNil(t, err)
	assert.Equal(t, ReasonOutsideServiceHour, err.Reason)
}

func TestValidateBookingInactiveWeekday(t *testing.T) {
	fridayAt10 := time.Date(2026, 9, 4, 10, 0, 0, 0, timezone.Location())
	err := ValidateBooking(bookableProfile(), true, fridayAt10, TypeTextChat, nil, now)
	require.NotNil(t, err)
	assert.Equal(t, ReasonSlotUnavailable, err.Reason)
}

func TestValidateBookingSlotAlreadyBooked(t *testing.T) {
	existing := []models.Consultation{{
		DoctorID:    1,
		Status:      string(StatusConfirmed),
		ScheduledAt: at(9, 35),
	}}
	err := ValidateBooking(bookableProfile(), true, at(9, 40), TypeTextChat, existing, now)
	require.NotNil(t, err)
	assert.Equal(t, ReasonSlotUnavailable, err.Reason)
}

func TestBusyIntervalsNormalizeDriverLocation(t *testing.T) {
	// Drivers hand timestamptz values back in their own location. The
	// same instant as 09:00 Tehran, expressed in UTC, must still land
	// on minute 540 of the platform day.
	existing := []models.Consultation{{
		DoctorID:    1,
		Status:      string(StatusPending),
		ScheduledAt: at(9, 0).In(time.UTC),
	}}

	busy := BusyIntervals(existing, at(9, 0), 30)
	require.Len(t, busy, 1)
	assert.Equal(t, 540, busy[0].Start)
	assert.Equal(t, 570, busy[0].End)
}

func TestValidateBookingRejectsUTCLocatedOccupant(t *testing.T) {
	existing := []models.Consultation{{
		DoctorID:    1,
		Status:      string(StatusConfirmed),
		ScheduledAt: at(9, 35).In(time.UTC),
	}}
	err := ValidateBooking(bookableProfile(), true, at(9, 35), TypeTextChat, existing, now)
	require.NotNil(t, err)
	assert.Equal(t, ReasonSlotUnavailable, err.Reason)
}

func TestValidateBookingCancelledConsultationFreesSlot(t *testing.T) {
	existing := []models.Consultation{{
		DoctorID:    1,
		Status:      string(StatusCancelled),
		ScheduledAt: at(9, 35),
	}}
	assert.Nil(t, ValidateBooking(bookableProfile(), true, at(9, 40), TypeTextChat, existing, now))
}

func TestValidateBookingTimeInGapBetweenSlots(t *testing.T) {
	// 09:30-09:35 is the gap after the first slot.
	err := ValidateBooking(bookableProfile(), true, at(9, 31), TypeTextChat, nil, now)
	require.NotNil(t, err)
	assert.Equal(t, ReasonSlotUnavailable, err.Reason)
}

func TestFeeTable(t *testing.T) {
	assert.Equal(t, int64(50000), FeeFor(TypeTextChat))
	assert.Equal(t, int64(80000), FeeFor(TypeVoiceCall))
	assert.Equal(t, int64(120000), FeeFor(TypeVideoCall))
	assert.Equal(t, int64(200000), FeeFor(TypeInPerson))
}

func TestParseType(t *testing.T) {
	got, ok := ParseType("video_call")
	assert.True(t, ok)
	assert.Equal(t, TypeVideoCall, got)

	_, ok = ParseType("carrier_pigeon")
	assert.False(t, ok)
}

func TestStatusOccupies(t *testing.T) {
	assert.True(t, StatusPending.Occupies())
	assert.True(t, StatusConfirmed.Occupies())
	assert.True(t, StatusInProgress.Occupies())
	assert.False(t, StatusCompleted.Occupies())
	assert.False(t, StatusCancelled.Occupies())
	assert.False(t, StatusNoShow.Occupies())
}

func TestTransitions(t *testing.T) {
	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.Error(t, CanCancel(StatusCompleted))

	assert.NoError(t, CanConfirm(StatusPending))
	assert.Error(t, CanConfirm(StatusInProgress))

	assert.NoError(t, CanStart(StatusConfirmed))
	assert.Error(t, CanStart(StatusPending))

	assert.NoError(t, CanComplete(StatusInProgress))
	assert.Error(t, CanComplete(StatusConfirmed))

	assert.NoError(t, CanMarkNoShow(StatusConfirmed))
	assert.Error(t, CanMarkNoShow(StatusPending))
}
