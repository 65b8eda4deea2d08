package media

import (
	"time"

	"github.com/palinaresort/resort-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.NotFound("photo not found")
	ErrNotAnImage  = apperror.Validation("uploaded file is not an image")
	ErrNoThumbnail = apperror.NotFound("thumbnail not available")
)

// Photo is a cabin gallery image stored on disk.
type Photo struct {
	ID            string    `json:"id"`
	CabinTypeID   int64     `json:"cabin_type_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"`
	ThumbnailPath *string   `json:"-"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// PhotoURL returns the public URL serving the photo.
func PhotoURL(id string) string {
	return "/api/v1/media/" + id
}

// ThumbnailURL returns the public URL serving the photo's thumbnail.
func ThumbnailURL(id string) string {
	return "/api/v1/media/" + id + "/thumbnail"
}
