package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palinaresort/resort-booking-backend/internal/notification"
)

type memRepository struct {
	bookings map[int64]*Booking
	nextID   int64
}

func newMemRepository() *memRepository {
	return &memRepository{bookings: map[int64]*Booking{}, nextID: 1}
}

func (r *memRepository) Create(_ context.Context, b *Booking) error {
	b.ID = r.nextID
	r.nextID++
	b.Status = StatusPending
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id int64) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memRepository) List(_ context.Context, filter Filter) ([]*Booking, error) {
	var result []*Booking
	for _, b := range r.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.Type != "" && b.Type != filter.Type {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *memRepository) UpdateStatus(_ context.Context, id int64, status Status, adminNotes *string) error {
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	if adminNotes != nil {
		b.AdminNotes = *adminNotes
	}
	b.UpdatedAt = time.Now()
	return nil
}

func (r *memRepository) MarkNotified(_ context.Context, id int64) error {
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.WhatsAppNotified = true
	return nil
}

func (r *memRepository) Stats(_ context.Context) (Stats, error) {
	var s Stats
	for _, b := range r.bookings {
		if b.Status == StatusPending {
			s.Pending++
		}
		if b.Status == StatusConfirmed {
			s.Confirmed++
		}
		if b.Type == TypeCabin {
			s.CabinBookings++
		} else {
			s.DayPassBookings++
		}
	}
	return s, nil
}

type sentMessage struct {
	To        string
	Body      string
	BookingID *int64
}

type stubNotifier struct {
	sent   []sentMessage
	result notification.Result
}

func (n *stubNotifier) Send(_ context.Context, to, body string, bookingID *int64) notification.Result {
	n.sent = append(n.sent, sentMessage{To: to, Body: body, BookingID: bookingID})
	return n.result
}

func date(value string) *time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func cabinInput() CreateInput {
	return CreateInput{
		GuestName:      "Ana",
		GuestPhone:     "+96170123456",
		Type:           TypeCabin,
		CheckInDate:    date("2026-09-10"),
		CheckOutDate:   date("2026-09-12"),
		NumberOfGuests: 2,
		TotalPrice:     200,
	}
}

func TestCreateCabinBooking(t *testing.T) {
	repo := newMemRepository()
	notifier := &stubNotifier{result: notification.Result{Success: true, Provider: "console"}}
	svc := NewService(repo, notifier, "+96171000000")

	b, results, err := svc.Create(context.Background(), cabinInput())
	require.NoError(t, err)

	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, float64(200), b.TotalPrice, "price is stored as submitted")
	assert.NotNil(t, b.CheckInDate)
	assert.Nil(t, b.VisitDate)

	// One message to the admin, one to the guest.
	require.Len(t, notifier.sent, 2)
	assert.Equal(t, "+96171000000", notifier.sent[0].To)
	assert.Contains(t, notifier.sent[0].Body, "NEW BOOKING")
	assert.Equal(t, "+96170123456", notifier.sent[1].To)
	assert.Contains(t, notifier.sent[1].Body, "Thank you for booking")

	require.NotNil(t, results.Admin)
	require.NotNil(t, results.Guest)
	assert.True(t, results.Admin.Success)
	assert.True(t, results.Guest.Success)
}

func TestCreateDayPassClearsStayDates(t *testing.T) {
	repo := newMemRepository()
	svc := NewService(repo, &stubNotifier{}, "")

	in := CreateInput{
		GuestName:    "Rami",
		GuestPhone:   "70123456",
		Type:         TypeDayPass,
		VisitDate:    date("2026-09-10"),
		CheckInDate:  date("2026-09-10"),
		CheckOutDate: date("2026-09-11"),
	}
	b, _, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Nil(t, b.CheckInDate, "stay dates do not apply to day passes")
	assert.Nil(t, b.CheckOutDate)
	require.NotNil(t, b.VisitDate)
	assert.Equal(t, 1, b.NumberOfGuests, "guests defaults to 1")
}

func TestCreateWithoutAdminPhone(t *testing.T) {
	notifier := &stubNotifier{result: notification.Result{Success: true, Provider: "console"}}
	svc := NewService(newMemRepository(), notifier, "")

	_, results, err := svc.Create(context.Background(), cabinInput())
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1, "only the guest message goes out")
	require.NotNil(t, results.Admin)
	assert.False(t, results.Admin.Success)
	assert.NotEmpty(t, results.Admin.Error)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMemRepository(), &stubNotifier{}, "")

	cases := []struct {
		name    string
		mutate  func(*CreateInput)
		wantErr error
	}{
		{"missing name", func(in *CreateInput) { in.GuestName = "  " }, ErrGuestNameRequired},
		{"missing phone", func(in *CreateInput) { in.GuestPhone = "" }, ErrGuestPhoneRequired},
		{"bad type", func(in *CreateInput) { in.Type = "glamping" }, ErrInvalidType},
		{"cabin without checkout", func(in *CreateInput) { in.CheckOutDate = nil }, ErrStayDatesRequired},
		{"negative price", func(in *CreateInput) { in.TotalPrice = -5 }, ErrNegativePrice},
		{"day pass without visit date", func(in *CreateInput) {
			in.Type = TypeDayPass
			in.VisitDate = nil
		}, ErrVisitDateRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := cabinInput()
			tc.mutate(&in)
			_, _, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestChangeStatus(t *testing.T) {
	repo := newMemRepository()
	notifier := &stubNotifier{result: notification.Result{Success: true, Provider: "console"}}
	svc := NewService(repo, notifier, "")

	b, _, err := svc.Create(context.Background(), cabinInput())
	require.NoError(t, err)
	notifier.sent = nil

	updated, result, err := svc.ChangeStatus(context.Background(), b.ID, StatusConfirmed, nil, false)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, updated.Status)
	assert.True(t, result.Success)

	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].Body, "Booking Confirmed")

	// Confirmed bookings can be completed, which thanks the guest.
	notifier.sent = nil
	_, _, err = svc.ChangeStatus(context.Background(), b.ID, StatusCompleted, nil, false)
	require.NoError(t, err)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].Body, "Thank you for visiting")
}

func TestChangeStatusIllegalTransition(t *testing.T) {
	repo := newMemRepository()
	svc := NewService(repo, &stubNotifier{}, "")

	b, _, err := svc.Create(context.Background(), cabinInput())
	require.NoError(t, err)

	_, _, err = svc.ChangeStatus(context.Background(), b.ID, StatusCompleted, nil, false)
	assert.ErrorIs(t, err, ErrIllegalTransition, "pending cannot jump straight to completed")

	stored, err := svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, stored.Status)
}

func TestChangeStatusForce(t *testing.T) {
	repo := newMemRepository()
	notifier := &stubNotifier{result: notification.Result{Success: true}}
	svc := NewService(repo, notifier, "")

	b, _, err := svc.Create(context.Background(), cabinInput())
	require.NoError(t, err)

	updated, _, err := svc.ChangeStatus(context.Background(), b.ID, StatusCompleted, nil, true)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)
}

func TestChangeStatusInvalidStatus(t *testing.T) {
	svc := NewService(newMemRepository(), &stubNotifier{}, "")

	_, _, err := svc.ChangeStatus(context.Background(), 1, Status("archived"), nil, false)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestChangeStatusNotFound(t *testing.T) {
	svc := NewService(newMemRepository(), &stubNotifier{}, "")

	_, _, err := svc.ChangeStatus(context.Background(), 99, StatusConfirmed, nil, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangeStatusAppliesAdminNotes(t *testing.T) {
	repo := newMemRepository()
	svc := NewService(repo, &stubNotifier{}, "")

	b, _, err := svc.Create(context.Background(), cabinInput())
	require.NoError(t, err)

	// Rewind the stored timestamps so the update is visibly later.
	stored := repo.bookings[b.ID]
	stored.CreatedAt = stored.CreatedAt.Add(-time.Minute)
	stored.UpdatedAt = stored.CreatedAt

	notes := "paid via bank transfer"
	updated, _, err := svc.ChangeStatus(context.Background(), b.ID, StatusConfirmed, &notes, false)
	require.NoError(t, err)
	assert.Equal(t, notes, updated.AdminNotes)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}
