package booking

import (
	"context"
	"strings"
	"time"

	"github.com/palinaresort/resort-booking-backend/internal/notification"
)

// Notifier is the slice of the notification sender the booking service
// uses. Send never fails; delivery problems come back inside the Result.
type Notifier interface {
	Send(ctx context.Context, to, body string, bookingID *int64) notification.Result
}

// CreateInput carries the caller-provided fields for a new booking.
// The total price is computed by the caller and stored as submitted.
type CreateInput struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	Type            Type
	CabinTypeID     *int64
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	VisitDate       *time.Time
	NumberOfGuests  int
	TotalPrice      float64
	SpecialRequests string
}

// Validate checks the required guest fields and the date fields the
// booking type demands.
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.GuestName) == "" {
		return ErrGuestNameRequired
	}
	if strings.TrimSpace(in.GuestPhone) == "" {
		return ErrGuestPhoneRequired
	}
	if !in.Type.Valid() {
		return ErrInvalidType
	}
	switch in.Type {
	case TypeCabin:
		if in.CheckInDate == nil || in.CheckOutDate == nil {
			return ErrStayDatesRequired
		}
	case TypeDayPass:
		if in.VisitDate == nil {
			return ErrVisitDateRequired
		}
	}
	if in.TotalPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Notifications reports the best-effort delivery outcomes attached to a
// create response. A failed send never fails the booking itself.
type Notifications struct {
	Admin *notification.Result `json:"admin,omitempty"`
	Guest *notification.Result `json:"guest,omitempty"`
}

type Service interface {
	// Create persists the booking, then attempts the admin and guest
	// notifications. Notification outcomes ride along in the result.
	Create(ctx context.Context, in CreateInput) (*Booking, Notifications, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	// ChangeStatus moves a booking to a new status, enforcing the
	// transition rules unless force is set (admin override), then sends
	// one status message to the guest.
	ChangeStatus(ctx context.Context, id int64, status Status, adminNotes *string, force bool) (*Booking, notification.Result, error)
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo       Repository
	notifier   Notifier
	adminPhone string
}

// NewService wires the booking store and the notification sender.
// adminPhone may be empty, in which case admin alerts are skipped.
func NewService(repo Repository, notifier Notifier, adminPhone string) Service {
	return &service{
		repo:       repo,
		notifier:   notifier,
		adminPhone: adminPhone,
	}
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Booking, Notifications, error) {
	if err := in.Validate(); err != nil {
		return nil, Notifications{}, err
	}

	guests := in.NumberOfGuests
	if guests < 1 {
		guests = 1
	}

	b := &Booking{
		GuestName:       strings.TrimSpace(in.GuestName),
		GuestEmail:      strings.TrimSpace(in.GuestEmail),
		GuestPhone:      strings.TrimSpace(in.GuestPhone),
		Type:            in.Type,
		CabinTypeID:     in.CabinTypeID,
		NumberOfGuests:  guests,
		TotalPrice:      in.TotalPrice,
		SpecialRequests: in.SpecialRequests,
	}

	// The booking type decides which date fields are kept.
	switch in.Type {
	case TypeCabin:
		b.CheckInDate = in.CheckInDate
		b.CheckOutDate = in.CheckOutDate
	case TypeDayPass:
		b.VisitDate = in.VisitDate
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, Notifications{}, err
	}

	// Best effort from here on: the booking is persisted no matter what
	// happens to the notifications.
	var results Notifications
	details := newDetails(b)

	if s.adminPhone != "" {
		r := s.notifier.Send(ctx, s.adminPhone, notification.AdminNewBooking(details), &b.ID)
		results.Admin = &r
	} else {
		results.Admin = &notification.Result{Error: "admin phone not configured"}
	}

	guest := s.notifier.Send(ctx, b.GuestPhone, notification.GuestBookingReceived(details), &b.ID)
	results.Guest = &guest

	return b, results, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ChangeStatus(ctx context.Context, id int64, status Status, adminNotes *string, force bool) (*Booking, notification.Result, error) {
	if !status.Valid() {
		return nil, notification.Result{}, ErrInvalidStatus
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notification.Result{}, err
	}

	if !force && current.Status != status && !CanTransition(current.Status, status) {
		return nil, notification.Result{}, ErrIllegalTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status, adminNotes); err != nil {
		return nil, notification.Result{}, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notification.Result{}, err
	}

	result := s.notifyStatus(ctx, updated, status)
	return updated, result, nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}

// notifyStatus sends the guest one message for the new status. Statuses
// without a template (pending) produce a no-send failed result.
func (s *service) notifyStatus(ctx context.Context, b *Booking, status Status) notification.Result {
	body, err := notification.GuestStatusUpdate(newDetails(b), string(status))
	if err != nil {
		return notification.Result{Error: err.Error()}
	}
	return s.notifier.Send(ctx, b.GuestPhone, body, &b.ID)
}

// newDetails maps a booking onto the template input, formatting dates.
func newDetails(b *Booking) notification.BookingDetails {
	return notification.BookingDetails{
		ID:              b.ID,
		GuestName:       b.GuestName,
		GuestPhone:      b.GuestPhone,
		GuestEmail:      b.GuestEmail,
		IsCabin:         b.Type == TypeCabin,
		CheckInDate:     formatDate(b.CheckInDate),
		CheckOutDate:    formatDate(b.CheckOutDate),
		VisitDate:       formatDate(b.VisitDate),
		NumberOfGuests:  b.NumberOfGuests,
		TotalPrice:      b.TotalPrice,
		SpecialRequests: b.SpecialRequests,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
