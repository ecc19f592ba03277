package entity

import (
	"testing"
	"time"

	"go-hostel-pms/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Activate(t *testing.T) {
	booking := &Booking{Status: BookingStatusConfirmed, ConfirmationCode: "HB-20260901-AB12CD"}

	assert.NoError(t, booking.Activate())
	assert.Equal(t, BookingStatusActive, booking.Status)
}

func TestBooking_Activate_Terminal(t *testing.T) {
	for _, status := range []BookingStatus{BookingStatusActive, BookingStatusCheckedOut, BookingStatusCancelled, BookingStatusNoShow} {
		booking := &Booking{Status: status}

		err := booking.Activate()

		assert.True(t, apperr.IsKind(err, apperr.KindInvalidState), "activate from %s should fail", status)
	}
}

func TestBooking_Close(t *testing.T) {
	booking := &Booking{Status: BookingStatusActive}

	assert.NoError(t, booking.Close())
	assert.Equal(t, BookingStatusCheckedOut, booking.Status)

	// Terminal: closing twice fails.
	assert.True(t, apperr.IsKind(booking.Close(), apperr.KindInvalidState))
}

func TestBooking_MarkNoShow(t *testing.T) {
	booking := &Booking{Status: BookingStatusPending}

	assert.NoError(t, booking.MarkNoShow())
	assert.Equal(t, BookingStatusNoShow, booking.Status)
}

func TestBooking_MarkNoShow_AfterArrival(t *testing.T) {
	booking := &Booking{Status: BookingStatusActive}

	assert.True(t, apperr.IsKind(booking.MarkNoShow(), apperr.KindInvalidState))
}

func TestBooking_Cancel(t *testing.T) {
	booking := &Booking{Status: BookingStatusConfirmed}

	assert.NoError(t, booking.Cancel())
	assert.Equal(t, BookingStatusCancelled, booking.Status)
}

func TestBooking_Cancel_AfterArrival(t *testing.T) {
	booking := &Booking{Status: BookingStatusActive}

	assert.True(t, apperr.IsKind(booking.Cancel(), apperr.KindInvalidState))
}

func TestBlockingStatuses(t *testing.T) {
	statuses := BlockingStatuses()

	assert.ElementsMatch(t, []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusActive}, statuses)
}

func TestNightsBetween(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"single night", day(1), day(2), 1},
		{"full week", day(1), day(8), 7},
		{"partial day rounds up", day(1), day(2).Add(6 * time.Hour), 2},
		{"same instant floors to one", day(1), day(1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}
