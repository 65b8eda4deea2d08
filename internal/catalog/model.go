package catalog

import (
	"time"

	"github.com/palinaresort/resort-booking-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.NotFound("catalog item not found")

// CabinType describes a bookable cabin model. Amenities is stored as a
// JSONB array in the database.
type CabinType struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Capacity      int       `json:"capacity"`
	PricePerNight float64   `json:"price_per_night"`
	Amenities     []string  `json:"amenities"`
	ImageURL      string    `json:"image_url"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DayPass is a priced day-visit tier, e.g. adult or child admission.
type DayPass struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
