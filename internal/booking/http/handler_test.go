package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palinaresort/resort-booking-backend/internal/booking"
	"github.com/palinaresort/resort-booking-backend/internal/notification"
)

type stubService struct {
	created     *booking.CreateInput
	changeForce bool
	booking     *booking.Booking
	err         error
}

func (s *stubService) Create(_ context.Context, in booking.CreateInput) (*booking.Booking, booking.Notifications, error) {
	if s.err != nil {
		return nil, booking.Notifications{}, s.err
	}
	s.created = &in
	notified := notification.Result{Success: true, Provider: "console"}
	return s.booking, booking.Notifications{Admin: &notified, Guest: &notified}, nil
}

func (s *stubService) GetByID(_ context.Context, _ int64) (*booking.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booking, nil
}

func (s *stubService) List(_ context.Context, _ booking.Filter) ([]*booking.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*booking.Booking{s.booking}, nil
}

func (s *stubService) ChangeStatus(_ context.Context, _ int64, status booking.Status, _ *string, force bool) (*booking.Booking, notification.Result, error) {
	if s.err != nil {
		return nil, notification.Result{}, s.err
	}
	s.changeForce = force
	updated := *s.booking
	updated.Status = status
	return &updated, notification.Result{Success: true, Provider: "console"}, nil
}

func (s *stubService) Stats(_ context.Context) (booking.Stats, error) {
	return booking.Stats{Pending: 1}, nil
}

func testBooking() *booking.Booking {
	checkIn, _ := time.Parse(booking.DateLayout, "2026-09-10")
	checkOut := checkIn.AddDate(0, 0, 2)
	return &booking.Booking{
		ID:             1,
		GuestName:      "Ana",
		GuestPhone:     "+96170123456",
		Type:           booking.TypeCabin,
		CheckInDate:    &checkIn,
		CheckOutDate:   &checkOut,
		NumberOfGuests: 2,
		TotalPrice:     200,
		Status:         booking.StatusPending,
	}
}

func newTestRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/api/v1")
	admin := v1.Group("/admin")
	RegisterRoutes(v1, admin, NewHandler(svc))
	return r
}

func TestCreateBooking(t *testing.T) {
	svc := &stubService{booking: testBooking()}
	router := newTestRouter(svc)

	payload := `{
		"guest_name": "Ana",
		"guest_phone": "+96170123456",
		"booking_type": "cabin",
		"check_in_date": "2026-09-10",
		"check_out_date": "2026-09-12",
		"number_of_guests": 2,
		"total_price": 200
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Booking.ID)
	assert.Equal(t, "pending", resp.Booking.Status)
	require.NotNil(t, resp.Notifications.Guest)
	assert.True(t, resp.Notifications.Guest.Success)

	require.NotNil(t, svc.created)
	assert.Equal(t, booking.TypeCabin, svc.created.Type)
	require.NotNil(t, svc.created.CheckInDate)
	assert.Equal(t, "2026-09-10", svc.created.CheckInDate.Format(booking.DateLayout))
}

func TestCreateBookingRejectsBadType(t *testing.T) {
	router := newTestRouter(&stubService{booking: testBooking()})

	payload := `{"guest_name": "Ana", "guest_phone": "+96170123456", "booking_type": "glamping"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	router := newTestRouter(&stubService{booking: testBooking()})

	payload := `{"guest_name": "Ana", "guest_phone": "+96170123456", "booking_type": "cabin", "check_in_date": "10/09/2026"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
}

func TestUpdateStatus(t *testing.T) {
	svc := &stubService{booking: testBooking()}
	router := newTestRouter(svc)

	payload := `{"status": "confirmed", "force": true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/1/status", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, svc.changeForce)
	assert.Contains(t, w.Body.String(), `"confirmed"`)
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	svc := &stubService{err: booking.ErrIllegalTransition}
	router := newTestRouter(svc)

	payload := `{"status": "completed"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/1/status", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "transition")
}

func TestGetBookingNotFound(t *testing.T) {
	router := newTestRouter(&stubService{err: booking.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookings(t *testing.T) {
	router := newTestRouter(&stubService{booking: testBooking()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?status=pending", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
