package http

import (
	"time"

	"github.com/palinaresort/resort-booking-backend/internal/notification"
	"github.com/palinaresort/resort-booking-backend/internal/pkg/request"
)

type ListLogRequest struct {
	request.ListParams
	BookingID *int64 `form:"booking_id" binding:"omitempty,min=1"`
}

type TestMessageRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type LogEntryResponse struct {
	ID           int64      `json:"id"`
	BookingID    *int64     `json:"booking_id,omitempty"`
	Recipient    string     `json:"recipient"`
	Message      string     `json:"message"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message,omitempty"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewLogEntryResponse(e *notification.LogEntry) LogEntryResponse {
	return LogEntryResponse{
		ID:           e.ID,
		BookingID:    e.BookingID,
		Recipient:    e.Recipient,
		Message:      e.Message,
		Status:       string(e.Status),
		ErrorMessage: e.ErrorMessage,
		SentAt:       e.SentAt,
		CreatedAt:    e.CreatedAt,
	}
}
