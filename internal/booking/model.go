package booking

import (
	"time"

	"github.com/palinaresort/resort-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.NotFound("booking not found")
	ErrGuestNameRequired  = apperror.Validation("guest name is required")
	ErrGuestPhoneRequired = apperror.Validation("guest phone is required")
	ErrInvalidType        = apperror.Validation("booking type must be cabin or day_pass")
	ErrStayDatesRequired  = apperror.Validation("check-in and check-out dates are required for cabin bookings")
	ErrVisitDateRequired  = apperror.Validation("visit date is required for day pass bookings")
	ErrNegativePrice      = apperror.Validation("total price must not be negative")
	ErrInvalidStatus      = apperror.Validation("invalid booking status")
	ErrIllegalTransition  = apperror.Validation("status transition not allowed")
)

// DateLayout is the calendar-date format used for check-in, check-out and visit dates.
const DateLayout = "2006-01-02"

// Type distinguishes overnight cabin stays from single-day pool passes.
type Type string

const (
	TypeCabin   Type = "cabin"
	TypeDayPass Type = "day_pass"
)

// Valid reports whether t is a recognized booking type.
func (t Type) Valid() bool {
	return t == TypeCabin || t == TypeDayPass
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the four recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to
// another: pending bookings can be confirmed or cancelled, confirmed
// bookings completed or cancelled. Cancelled and completed are terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}

// Booking is a guest's reservation request for either a cabin stay or a day pass.
// The booking type determines which date fields are populated; the others stay nil.
type Booking struct {
	ID               int64
	GuestName        string
	GuestEmail       string
	GuestPhone       string
	Type             Type
	CabinTypeID      *int64
	CheckInDate      *time.Time
	CheckOutDate     *time.Time
	VisitDate        *time.Time
	NumberOfGuests   int
	TotalPrice       float64
	Status           Status
	SpecialRequests  string
	AdminNotes       string
	WhatsAppNotified bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Filter defines parameters for listing bookings. Zero values mean "any";
// set fields are combined with AND.
type Filter struct {
	Status Status
	Type   Type
}

// Stats summarizes the current booking records for the admin dashboard.
type Stats struct {
	Pending         int `json:"pending"`
	Confirmed       int `json:"confirmed"`
	CabinBookings   int `json:"cabin_bookings"`
	DayPassBookings int `json:"day_pass_bookings"`
}
