package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	name string
	err  error

	lastTo   string
	lastBody string
	calls    int
}

func (t *stubTransport) Name() string { return t.name }

func (t *stubTransport) Send(_ context.Context, to, body string) error {
	t.calls++
	t.lastTo = to
	t.lastBody = body
	return t.err
}

type memTrail struct {
	entries []*LogEntry
	err     error
}

func (m *memTrail) Append(_ context.Context, entry *LogEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memTrail) List(_ context.Context, _ Filter) ([]*LogEntry, int, error) {
	return m.entries, len(m.entries), nil
}

type memBookingStore struct {
	notified []int64
}

func (m *memBookingStore) MarkNotified(_ context.Context, bookingID int64) error {
	m.notified = append(m.notified, bookingID)
	return nil
}

func TestSenderSuccess(t *testing.T) {
	transport := &stubTransport{name: "meta"}
	trail := &memTrail{}
	store := &memBookingStore{}
	sender := NewSender([]Transport{transport}, trail, store, "+961")

	bookingID := int64(7)
	result := sender.Send(context.Background(), "070123456", "hello", &bookingID)

	assert.True(t, result.Success)
	assert.Equal(t, "meta", result.Provider)
	assert.Empty(t, result.Error)

	assert.Equal(t, "+96170123456", transport.lastTo, "recipient should be normalized")

	require.Len(t, trail.entries, 1)
	entry := trail.entries[0]
	assert.Equal(t, LogStatusSent, entry.Status)
	assert.Equal(t, "+96170123456", entry.Recipient)
	assert.Equal(t, "hello", entry.Message)
	require.NotNil(t, entry.BookingID)
	assert.Equal(t, bookingID, *entry.BookingID)

	assert.Equal(t, []int64{7}, store.notified)
}

func TestSenderTransportFailure(t *testing.T) {
	transport := &stubTransport{name: "twilio", err: errors.New("gateway timeout")}
	trail := &memTrail{}
	store := &memBookingStore{}
	sender := NewSender([]Transport{transport}, trail, store, "+961")

	bookingID := int64(7)
	result := sender.Send(context.Background(), "+96170123456", "hello", &bookingID)

	assert.False(t, result.Success)
	assert.Equal(t, "twilio", result.Provider)
	assert.Equal(t, "gateway timeout", result.Error)

	require.Len(t, trail.entries, 1)
	assert.Equal(t, LogStatusFailed, trail.entries[0].Status)
	assert.Equal(t, "gateway timeout", trail.entries[0].ErrorMessage)

	assert.Empty(t, store.notified, "failed sends must not mark the booking notified")
}

func TestSenderFallsBackToConsole(t *testing.T) {
	trail := &memTrail{}
	store := &memBookingStore{}
	sender := NewSender(nil, trail, store, "+961")

	bookingID := int64(3)
	result := sender.Send(context.Background(), "+96170123456", "hello", &bookingID)

	assert.True(t, result.Success)
	assert.Equal(t, "console", result.Provider)
	require.Len(t, trail.entries, 1)
	assert.Equal(t, LogStatusSent, trail.entries[0].Status)
}

func TestSenderUsesFirstTransport(t *testing.T) {
	first := &stubTransport{name: "meta"}
	second := &stubTransport{name: "twilio"}
	sender := NewSender([]Transport{first, second}, &memTrail{}, &memBookingStore{}, "+961")

	result := sender.Send(context.Background(), "+96170123456", "hello", nil)

	assert.Equal(t, "meta", result.Provider)
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, second.calls)
}

func TestSenderNoTrailWithoutBookingID(t *testing.T) {
	trail := &memTrail{}
	sender := NewSender(nil, trail, &memBookingStore{}, "+961")

	result := sender.Send(context.Background(), "+96170123456", "hello", nil)

	assert.True(t, result.Success)
	assert.Empty(t, trail.entries)
}

func TestSenderSwallowsTrailErrors(t *testing.T) {
	trail := &memTrail{err: errors.New("db down")}
	store := &memBookingStore{}
	sender := NewSender(nil, trail, store, "+961")

	bookingID := int64(9)
	result := sender.Send(context.Background(), "+96170123456", "hello", &bookingID)

	assert.True(t, result.Success, "trail errors must not fail the send")
	assert.Equal(t, []int64{9}, store.notified)
}
