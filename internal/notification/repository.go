package notification

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Append inserts a new trail entry. The trail is append-only.
	Append(ctx context.Context, entry *LogEntry) error
	// List returns trail entries, newest first, with the total count.
	List(ctx context.Context, filter Filter) ([]*LogEntry, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Append(ctx context.Context, entry *LogEntry) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.notification_log").
		Columns("booking_id", "recipient", "message", "status", "error_message", "sent_at").
		Values(entry.BookingID, entry.Recipient, entry.Message, entry.Status, entry.ErrorMessage, entry.SentAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build append notification query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("append notification failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*LogEntry, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select(
		"id", "booking_id", "recipient", "message", "status", "error_message", "sent_at", "created_at",
		"count(*) OVER() as total_count",
	).From("public.notification_log")

	if filter.BookingID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"booking_id": *filter.BookingID})
	}

	queryBuilder = queryBuilder.OrderBy("created_at DESC", "id DESC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	queryBuilder = queryBuilder.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list notifications query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications failed: %w", err)
	}
	defer rows.Close()

	var entries []*LogEntry
	var total int

	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(
			&e.ID, &e.BookingID, &e.Recipient, &e.Message, &e.Status,
			&e.ErrorMessage, &e.SentAt, &e.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan notification failed: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, total, rows.Err()
}
