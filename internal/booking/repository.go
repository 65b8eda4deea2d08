package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	// List returns bookings matching the filter, newest-created first.
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	// UpdateStatus overwrites the status unconditionally; adminNotes is
	// applied only when non-nil. Transition rules live in the service.
	UpdateStatus(ctx context.Context, id int64, status Status, adminNotes *string) error
	// MarkNotified records that an outbound notification succeeded for the booking.
	MarkNotified(ctx context.Context, id int64) error
	Stats(ctx context.Context) (Stats, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "id, guest_name, guest_email, guest_phone, booking_type, cabin_type_id, " +
	"check_in_date, check_out_date, visit_date, number_of_guests, total_price, status, " +
	"special_requests, admin_notes, whatsapp_notified, created_at, updated_at"

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.GuestName, &b.GuestEmail, &b.GuestPhone, &b.Type, &b.CabinTypeID,
		&b.CheckInDate, &b.CheckOutDate, &b.VisitDate, &b.NumberOfGuests, &b.TotalPrice, &b.Status,
		&b.SpecialRequests, &b.AdminNotes, &b.WhatsAppNotified, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// mapCheckViolation converts a CHECK constraint violation into the matching
// validation error so callers see a 400 instead of a raw database error.
func mapCheckViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
		switch pgErr.ConstraintName {
		case "bookings_booking_type_check":
			return ErrInvalidType
		case "bookings_status_check":
			return ErrInvalidStatus
		}
	}
	return err
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"guest_name", "guest_email", "guest_phone", "booking_type", "cabin_type_id",
			"check_in_date", "check_out_date", "visit_date", "number_of_guests",
			"total_price", "special_requests",
		).
		Values(
			b.GuestName, b.GuestEmail, b.GuestPhone, b.Type, b.CabinTypeID,
			b.CheckInDate, b.CheckOutDate, b.VisitDate, b.NumberOfGuests,
			b.TotalPrice, b.SpecialRequests,
		).
		Suffix("RETURNING id, status, whatsapp_notified, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.Status, &b.WhatsAppNotified, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return mapCheckViolation(fmt.Errorf("create booking failed: %w", err))
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select(bookingColumns).From("public.bookings")

	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Type != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"booking_type": filter.Type})
	}

	// Newest first; id breaks ties so the order is deterministic.
	queryBuilder = queryBuilder.OrderBy("created_at DESC", "id DESC")

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status, adminNotes *string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("admin_notes", squirrel.Expr("COALESCE(?, admin_notes)", adminNotes)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return mapCheckViolation(fmt.Errorf("update booking status failed: %w", err))
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) MarkNotified(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("whatsapp_notified", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark notified query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark booking notified failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Stats(ctx context.Context) (Stats, error) {
	const query = `SELECT
		count(*) FILTER (WHERE status = 'pending'),
		count(*) FILTER (WHERE status = 'confirmed'),
		count(*) FILTER (WHERE booking_type = 'cabin'),
		count(*) FILTER (WHERE booking_type = 'day_pass')
	FROM public.bookings`

	var s Stats
	err := r.pool.QueryRow(ctx, query).
		Scan(&s.Pending, &s.Confirmed, &s.CabinBookings, &s.DayPassBookings)
	if err != nil {
		return Stats{}, fmt.Errorf("booking stats failed: %w", err)
	}
	return s, nil
}
