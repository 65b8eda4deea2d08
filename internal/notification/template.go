package notification

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is returned by GuestStatusUpdate for statuses that
// have no message template; the caller should skip the send.
var ErrUnknownStatus = errors.New("unknown status")

// BookingDetails is the notification-local view of a booking, carrying
// only what the message templates need. Dates arrive pre-formatted.
type BookingDetails struct {
	ID              int64
	GuestName       string
	GuestPhone      string
	GuestEmail      string
	IsCabin         bool
	CheckInDate     string
	CheckOutDate    string
	VisitDate       string
	NumberOfGuests  int
	TotalPrice      float64
	SpecialRequests string
}

// AdminNewBooking renders the alert sent to the resort admin when a new
// booking arrives.
func AdminNewBooking(d BookingDetails) string {
	bookingType := "🏊 Day Pass"
	dateInfo := fmt.Sprintf("Visit Date: %s", d.VisitDate)
	if d.IsCabin {
		bookingType = "🏠 Cabin Stay"
		dateInfo = fmt.Sprintf("Check-in: %s\nCheck-out: %s", d.CheckInDate, d.CheckOutDate)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔔 *NEW BOOKING - Palina Resort*\n\n%s\n\n", bookingType)
	fmt.Fprintf(&b, "👤 *Guest:* %s\n📞 *Phone:* %s\n", d.GuestName, d.GuestPhone)
	if d.GuestEmail != "" {
		fmt.Fprintf(&b, "📧 *Email:* %s\n", d.GuestEmail)
	}
	fmt.Fprintf(&b, "\n📅 %s\n👥 *Guests:* %d\n💰 *Total:* $%g\n", dateInfo, d.NumberOfGuests, d.TotalPrice)
	if d.SpecialRequests != "" {
		fmt.Fprintf(&b, "\n📝 *Notes:* %s\n", d.SpecialRequests)
	}
	fmt.Fprintf(&b, "\nReply with booking ID #%d to manage this booking.", d.ID)

	return b.String()
}

// GuestBookingReceived renders the acknowledgement sent to the guest
// right after their booking request is stored.
func GuestBookingReceived(d BookingDetails) string {
	kind := "day pass booking"
	dateLine := fmt.Sprintf("Visit: %s", d.VisitDate)
	if d.IsCabin {
		kind = "cabin reservation"
		dateLine = fmt.Sprintf("Check-in: %s", d.CheckInDate)
	}

	return fmt.Sprintf(`🌴 *Thank you for booking with Palina Resort!*

Hi %s,

We have received your %s request.

📋 *Booking Details:*
• Reference: #%d
• %s
• Guests: %d
• Total: $%g

We will contact you shortly to confirm your booking and payment details.

📍 Palina Resort, Lebanon
📱 Follow us: @palina_pool`, d.GuestName, kind, d.ID, dateLine, d.NumberOfGuests, d.TotalPrice)
}

// GuestStatusUpdate renders the message sent to the guest when their
// booking status changes. Statuses without a template yield ErrUnknownStatus.
func GuestStatusUpdate(d BookingDetails, status string) (string, error) {
	switch status {
	case "confirmed":
		return fmt.Sprintf(`✅ *Booking Confirmed!*

Hi %s,

Great news! Your booking #%d at Palina Resort has been confirmed.

We look forward to welcoming you!

📍 Palina Resort, Lebanon`, d.GuestName, d.ID), nil

	case "cancelled":
		return fmt.Sprintf(`❌ *Booking Cancelled*

Hi %s,

Your booking #%d at Palina Resort has been cancelled.

If you have any questions, please contact us.

📍 Palina Resort, Lebanon`, d.GuestName, d.ID), nil

	case "completed":
		return fmt.Sprintf(`🎉 *Thank you for visiting!*

Hi %s,

We hope you enjoyed your time at Palina Resort!

Please leave us a review on Instagram @palina_pool

See you again soon! 🌴`, d.GuestName), nil
	}

	return "", ErrUnknownStatus
}
