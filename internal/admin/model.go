package admin

import (
	"net/http"
	"time"

	"github.com/palinaresort/resort-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.NotFound("admin not found")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid username or password")
)

type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
