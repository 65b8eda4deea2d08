package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CreateCabinType(ctx context.Context, ct *CabinType) error
	GetCabinType(ctx context.Context, id int64) (*CabinType, error)
	ListCabinTypes(ctx context.Context) ([]*CabinType, error)
	CountCabinTypes(ctx context.Context) (int, error)
	UpdateCabinImageURL(ctx context.Context, id int64, imageURL string) error
	CreateDayPass(ctx context.Context, dp *DayPass) error
	ListDayPasses(ctx context.Context) ([]*DayPass, error)
	CountDayPasses(ctx context.Context) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateCabinType(ctx context.Context, ct *CabinType) error {
	amenities, err := json.Marshal(ct.Amenities)
	if err != nil {
		return fmt.Errorf("marshal amenities failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("cabin_types").
		Columns("name", "description", "capacity", "price_per_night", "amenities", "image_url", "is_active").
		Values(ct.Name, ct.Description, ct.Capacity, ct.PricePerNight, amenities, ct.ImageURL, ct.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create cabin type query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&ct.ID, &ct.CreatedAt, &ct.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create cabin type failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetCabinType(ctx context.Context, id int64) (*CabinType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "name", "description", "capacity", "price_per_night", "amenities",
		"image_url", "is_active", "created_at", "updated_at",
	).
		From("cabin_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get cabin type query failed: %w", err)
	}

	ct, err := scanCabinType(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cabin type failed: %w", err)
	}
	return ct, nil
}

func (r *pgxRepository) ListCabinTypes(ctx context.Context) ([]*CabinType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "name", "description", "capacity", "price_per_night", "amenities",
		"image_url", "is_active", "created_at", "updated_at",
	).
		From("cabin_types").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("price_per_night ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cabin types query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cabin types failed: %w", err)
	}
	defer rows.Close()

	var result []*CabinType
	for rows.Next() {
		ct, err := scanCabinType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cabin type failed: %w", err)
		}
		result = append(result, ct)
	}
	return result, rows.Err()
}

func (r *pgxRepository) CountCabinTypes(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT count(*) FROM cabin_types").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count cabin types failed: %w", err)
	}
	return count, nil
}

func (r *pgxRepository) UpdateCabinImageURL(ctx context.Context, id int64, imageURL string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("cabin_types").
		Set("image_url", imageURL).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update cabin image query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update cabin image failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CreateDayPass(ctx context.Context, dp *DayPass) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("day_pass_pricing").
		Columns("name", "description", "price", "is_active").
		Values(dp.Name, dp.Description, dp.Price, dp.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create day pass query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&dp.ID, &dp.CreatedAt, &dp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create day pass failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListDayPasses(ctx context.Context) ([]*DayPass, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "name", "description", "price", "is_active", "created_at", "updated_at",
	).
		From("day_pass_pricing").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("price ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list day passes query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list day passes failed: %w", err)
	}
	defer rows.Close()

	var result []*DayPass
	for rows.Next() {
		var dp DayPass
		if err := rows.Scan(
			&dp.ID, &dp.Name, &dp.Description, &dp.Price, &dp.IsActive, &dp.CreatedAt, &dp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan day pass failed: %w", err)
		}
		result = append(result, &dp)
	}
	return result, rows.Err()
}

func (r *pgxRepository) CountDayPasses(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT count(*) FROM day_pass_pricing").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count day passes failed: %w", err)
	}
	return count, nil
}

func scanCabinType(row pgx.Row) (*CabinType, error) {
	var ct CabinType
	var amenities []byte
	if err := row.Scan(
		&ct.ID, &ct.Name, &ct.Description, &ct.Capacity, &ct.PricePerNight, &amenities,
		&ct.ImageURL, &ct.IsActive, &ct.CreatedAt, &ct.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(amenities, &ct.Amenities); err != nil {
		return nil, fmt.Errorf("unmarshal amenities failed: %w", err)
	}
	return &ct, nil
}
