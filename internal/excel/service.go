package excel

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/palinaresort/resort-booking-backend/internal/booking"
	"github.com/palinaresort/resort-booking-backend/internal/pkg/apperror"
	"github.com/palinaresort/resort-booking-backend/internal/pkg/storage"
)

var (
	ErrInvalidFilename = apperror.Validation("invalid export filename")
	ErrFileNotFound    = apperror.NotFound("export file not found")
)

// Service produces and consumes booking spreadsheets.
type Service interface {
	// Export returns the workbook bytes and a timestamped filename.
	Export(ctx context.Context, filter booking.Filter) ([]byte, string, error)
	// ExportToStorage writes the workbook under exports/ and returns
	// the stored filename.
	ExportToStorage(ctx context.Context) (string, error)
	// OpenStored streams a previously saved export by filename.
	OpenStored(ctx context.Context, name string) (io.ReadCloser, error)
	// Import reads a bookings workbook, updating rows that carry a
	// booking id and creating the rest.
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
	// DailyReport builds the operations workbook for the given day.
	DailyReport(ctx context.Context, now time.Time) ([]byte, string, error)
}

type service struct {
	bookings booking.Repository
	storage  storage.Storage
	now      func() time.Time
}

func NewService(bookings booking.Repository, store storage.Storage) Service {
	return &service{
		bookings: bookings,
		storage:  store,
		now:      time.Now,
	}
}

func (s *service) OpenStored(ctx context.Context, name string) (io.ReadCloser, error) {
	// Reject anything that could escape the exports directory.
	if name == "" || name != path.Base(name) || strings.Contains(name, "..") {
		return nil, ErrInvalidFilename
	}
	if !strings.HasSuffix(name, ".xlsx") {
		return nil, ErrInvalidFilename
	}

	rc, err := s.storage.Get(ctx, storedPath(name))
	if err != nil {
		return nil, ErrFileNotFound
	}
	return rc, nil
}

func storedPath(name string) string {
	return path.Join("exports", name)
}

func bytesReader(content []byte) io.Reader {
	return bytes.NewReader(content)
}
