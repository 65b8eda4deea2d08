package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema holds the idempotent bootstrap statements, executed in order on startup.
// Parent tables come before children so foreign keys resolve.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS cabin_types (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		capacity INT NOT NULL DEFAULT 2,
		price_per_night NUMERIC(10,2) NOT NULL,
		amenities JSONB NOT NULL DEFAULT '[]',
		image_url TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS day_pass_pricing (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		guest_name TEXT NOT NULL,
		guest_email TEXT NOT NULL DEFAULT '',
		guest_phone TEXT NOT NULL,
		booking_type TEXT NOT NULL CHECK (booking_type IN ('cabin', 'day_pass')),
		cabin_type_id BIGINT REFERENCES cabin_types(id),
		check_in_date DATE,
		check_out_date DATE,
		visit_date DATE,
		number_of_guests INT NOT NULL DEFAULT 1,
		total_price NUMERIC(10,2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'confirmed', 'cancelled', 'completed')),
		special_requests TEXT NOT NULL DEFAULT '',
		admin_notes TEXT NOT NULL DEFAULT '',
		whatsapp_notified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_type ON bookings (booking_type)`,
	`CREATE TABLE IF NOT EXISTS notification_log (
		id BIGSERIAL PRIMARY KEY,
		booking_id BIGINT REFERENCES bookings(id),
		recipient TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'sent', 'failed')),
		error_message TEXT NOT NULL DEFAULT '',
		sent_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS cabin_photos (
		id UUID PRIMARY KEY,
		cabin_type_id BIGINT REFERENCES cabin_types(id),
		filename TEXT NOT NULL,
		storage_path TEXT NOT NULL,
		thumbnail_path TEXT,
		content_type TEXT NOT NULL DEFAULT '',
		size BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate applies the bootstrap schema. All statements are idempotent so
// it is safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
