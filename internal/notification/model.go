package notification

import "time"

// LogStatus is the delivery outcome recorded for one send attempt.
type LogStatus string

const (
	LogStatusPending LogStatus = "pending"
	LogStatusSent    LogStatus = "sent"
	LogStatusFailed  LogStatus = "failed"
)

// LogEntry is one record in the append-only notification trail.
// Entries are never mutated; a retry appends a new entry.
type LogEntry struct {
	ID           int64
	BookingID    *int64
	Recipient    string
	Message      string
	Status       LogStatus
	ErrorMessage string
	SentAt       *time.Time
	CreatedAt    time.Time
}

// Filter defines parameters for listing the notification trail.
type Filter struct {
	BookingID *int64
	Page      int
	PageSize  int
}

// Result describes the outcome of a single send attempt. It is returned
// to callers instead of an error: transport failures never propagate.
type Result struct {
	Success  bool   `json:"success"`
	Provider string `json:"provider,omitempty"`
	Error    string `json:"error,omitempty"`
}
