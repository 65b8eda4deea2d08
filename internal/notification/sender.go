package notification

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// BookingStore is the slice of the booking store the sender needs: it
// flags a booking once an outbound notification has succeeded.
type BookingStore interface {
	MarkNotified(ctx context.Context, bookingID int64) error
}

// Sender delivers messages through an explicit, ordered list of
// transports and records every attempt on the notification trail.
// Transport failures are converted into a failed Result, never an error.
type Sender struct {
	transports         []Transport
	trail              Repository
	bookings           BookingStore
	defaultCountryCode string
}

// NewSender builds a Sender. transports must be ordered by priority; the
// container appends the console transport last so there is always a
// fallback. The list is consulted on every send.
func NewSender(transports []Transport, trail Repository, bookings BookingStore, defaultCountryCode string) *Sender {
	return &Sender{
		transports:         transports,
		trail:              trail,
		bookings:           bookings,
		defaultCountryCode: defaultCountryCode,
	}
}

// pick selects the transport for this attempt: the first configured one,
// console when the list is empty.
func (s *Sender) pick() Transport {
	if len(s.transports) > 0 {
		return s.transports[0]
	}
	return ConsoleTransport{}
}

// Send normalizes the recipient phone, attempts delivery through exactly
// one transport, and appends the outcome to the trail when bookingID is
// set. On a successful send the related booking is marked as notified.
func (s *Sender) Send(ctx context.Context, to, body string, bookingID *int64) Result {
	recipient := NormalizePhone(to, s.defaultCountryCode)
	transport := s.pick()

	result := Result{Provider: transport.Name()}

	if err := transport.Send(ctx, recipient, body); err != nil {
		result.Error = err.Error()
		log.Error().Err(err).
			Str("provider", transport.Name()).
			Str("recipient", recipient).
			Msg("whatsapp notification failed")

		s.append(ctx, bookingID, recipient, body, LogStatusFailed, err.Error())
		return result
	}

	result.Success = true

	s.append(ctx, bookingID, recipient, body, LogStatusSent, "")
	if bookingID != nil {
		if err := s.bookings.MarkNotified(ctx, *bookingID); err != nil {
			log.Error().Err(err).Int64("booking_id", *bookingID).Msg("failed to mark booking notified")
		}
	}

	return result
}

// append writes a trail entry; trail errors are logged and swallowed so
// they never affect the send outcome.
func (s *Sender) append(ctx context.Context, bookingID *int64, recipient, message string, status LogStatus, errMsg string) {
	if bookingID == nil {
		return
	}

	now := time.Now().UTC()
	entry := &LogEntry{
		BookingID:    bookingID,
		Recipient:    recipient,
		Message:      message,
		Status:       status,
		ErrorMessage: errMsg,
		SentAt:       &now,
	}
	if err := s.trail.Append(ctx, entry); err != nil {
		log.Error().Err(err).Int64("booking_id", *bookingID).Msg("failed to append notification trail entry")
	}
}
