package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cabinDetails() BookingDetails {
	return BookingDetails{
		ID:             42,
		GuestName:      "Ana",
		GuestPhone:     "+96170123456",
		IsCabin:        true,
		CheckInDate:    "2026-09-10",
		CheckOutDate:   "2026-09-12",
		NumberOfGuests: 2,
		TotalPrice:     200,
	}
}

func TestAdminNewBooking(t *testing.T) {
	msg := AdminNewBooking(cabinDetails())

	assert.Contains(t, msg, "NEW BOOKING - Palina Resort")
	assert.Contains(t, msg, "Cabin Stay")
	assert.Contains(t, msg, "Ana")
	assert.Contains(t, msg, "Check-in: 2026-09-10")
	assert.Contains(t, msg, "$200")
	assert.Contains(t, msg, "#42")
	assert.NotContains(t, msg, "Email", "empty email line should be omitted")
}

func TestAdminNewBookingDayPass(t *testing.T) {
	d := cabinDetails()
	d.IsCabin = false
	d.VisitDate = "2026-09-10"

	msg := AdminNewBooking(d)
	assert.Contains(t, msg, "Day Pass")
	assert.Contains(t, msg, "Visit Date: 2026-09-10")
}

func TestGuestBookingReceived(t *testing.T) {
	msg := GuestBookingReceived(cabinDetails())

	assert.Contains(t, msg, "Thank you for booking with Palina Resort")
	assert.Contains(t, msg, "cabin reservation")
	assert.Contains(t, msg, "Reference: #42")
}

func TestGuestStatusUpdate(t *testing.T) {
	d := cabinDetails()

	confirmed, err := GuestStatusUpdate(d, "confirmed")
	require.NoError(t, err)
	assert.Contains(t, confirmed, "Booking Confirmed")

	cancelled, err := GuestStatusUpdate(d, "cancelled")
	require.NoError(t, err)
	assert.Contains(t, cancelled, "Booking Cancelled")

	completed, err := GuestStatusUpdate(d, "completed")
	require.NoError(t, err)
	assert.Contains(t, completed, "Thank you for visiting")

	_, err = GuestStatusUpdate(d, "pending")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
