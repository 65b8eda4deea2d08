package http

import (
	"time"

	"github.com/palinaresort/resort-booking-backend/internal/booking"
)

type CreateBookingRequest struct {
	GuestName       string  `json:"guest_name" binding:"required"`
	GuestEmail      string  `json:"guest_email" binding:"omitempty,email"`
	GuestPhone      string  `json:"guest_phone" binding:"required"`
	BookingType     string  `json:"booking_type" binding:"required,oneof=cabin day_pass"`
	CabinTypeID     *int64  `json:"cabin_type_id"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	VisitDate       string  `json:"visit_date"`
	NumberOfGuests  int     `json:"number_of_guests" binding:"omitempty,min=1"`
	TotalPrice      float64 `json:"total_price"`
	SpecialRequests string  `json:"special_requests"`
}

// ToInput converts the request body into service input, parsing the
// calendar-date strings.
func (r *CreateBookingRequest) ToInput() (booking.CreateInput, error) {
	in := booking.CreateInput{
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		Type:            booking.Type(r.BookingType),
		CabinTypeID:     r.CabinTypeID,
		NumberOfGuests:  r.NumberOfGuests,
		TotalPrice:      r.TotalPrice,
		SpecialRequests: r.SpecialRequests,
	}

	var err error
	if in.CheckInDate, err = parseDate(r.CheckInDate); err != nil {
		return in, err
	}
	if in.CheckOutDate, err = parseDate(r.CheckOutDate); err != nil {
		return in, err
	}
	if in.VisitDate, err = parseDate(r.VisitDate); err != nil {
		return in, err
	}
	return in, nil
}

type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
	AdminNotes *string `json:"admin_notes"`
	// Force skips the transition rules, for admin corrections.
	Force bool `json:"force"`
}

type ListBookingsRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Type   string `form:"type" binding:"omitempty,oneof=cabin day_pass"`
}

type BookingResponse struct {
	ID               int64     `json:"id"`
	GuestName        string    `json:"guest_name"`
	GuestEmail       string    `json:"guest_email"`
	GuestPhone       string    `json:"guest_phone"`
	BookingType      string    `json:"booking_type"`
	CabinTypeID      *int64    `json:"cabin_type_id,omitempty"`
	CheckInDate      *string   `json:"check_in_date,omitempty"`
	CheckOutDate     *string   `json:"check_out_date,omitempty"`
	VisitDate        *string   `json:"visit_date,omitempty"`
	NumberOfGuests   int       `json:"number_of_guests"`
	TotalPrice       float64   `json:"total_price"`
	Status           string    `json:"status"`
	SpecialRequests  string    `json:"special_requests"`
	AdminNotes       string    `json:"admin_notes"`
	WhatsAppNotified bool      `json:"whatsapp_notified"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		GuestName:        b.GuestName,
		GuestEmail:       b.GuestEmail,
		GuestPhone:       b.GuestPhone,
		BookingType:      string(b.Type),
		CabinTypeID:      b.CabinTypeID,
		CheckInDate:      formatDate(b.CheckInDate),
		CheckOutDate:     formatDate(b.CheckOutDate),
		VisitDate:        formatDate(b.VisitDate),
		NumberOfGuests:   b.NumberOfGuests,
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		SpecialRequests:  b.SpecialRequests,
		AdminNotes:       b.AdminNotes,
		WhatsAppNotified: b.WhatsAppNotified,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// CreateBookingResponse attaches the notification outcomes to the
// freshly created booking.
type CreateBookingResponse struct {
	Booking       BookingResponse       `json:"booking"`
	Notifications booking.Notifications `json:"notifications"`
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(booking.DateLayout, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(booking.DateLayout)
	return &s
}
