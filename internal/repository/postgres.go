package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var tierColumns = []string{
	"id", "name", "base_rate", "base_weight", "oversize_rate",
	"overweight_rate_per_kg", "fragile_rate", "urgent_rate", "created_at", "updated_at",
}

var packageColumns = []string{
	"id", "merchant_id", "tracking_number",
	"receiver_name", "receiver_phone", "receiver_address", "receiver_city",
	"width", "length", "height", "weight", "is_fragile", "is_urgent",
	"tier_id", "cod_amount", "shipping_fee", "status", "created_at", "updated_at",
}

type PostgresStorage struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool, now: time.Now}
}

func (r *PostgresStorage) ListTiers(ctx context.Context) ([]models.RateTier, error) {
	query, args, err := psql.Select(tierColumns...).From("rate_tiers").OrderBy("base_rate", "name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tiers: %w", err)
	}
	defer rows.Close()

	var tiers []models.RateTier
	for rows.Next() {
		t, err := scanTier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tier: %w", err)
		}
		tiers = append(tiers, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan tier rows: %w", err)
	}
	return tiers, nil
}

func (r *PostgresStorage) GetTier(ctx context.Context, id string) (*models.RateTier, error) {
	query, args, err := psql.Select(tierColumns...).From("rate_tiers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	t, err := scanTier(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("get tier %s: %w", id, mapError(err))
	}
	return t, nil
}

func (r *PostgresStorage) CreateTier(ctx context.Context, t *models.RateTier) error {
	now := r.now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now

	query, args, err := psql.Insert("rate_tiers").Columns(tierColumns...).Values(
		t.ID, t.Name, t.BaseRate, t.BaseWeight, t.OversizeRate,
		t.OverweightRatePerKg, t.FragileRate, t.UrgentRate, t.CreatedAt, t.UpdatedAt,
	).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert tier: %w", mapError(err))
	}
	return nil
}

func (r *PostgresStorage) UpdateTier(ctx context.Context, t *models.RateTier) error {
	t.UpdatedAt = r.now().UTC()

	query, args, err := psql.Update("rate_tiers").SetMap(map[string]interface{}{
		"name":                   t.Name,
		"base_rate":              t.BaseRate,
		"base_weight":            t.BaseWeight,
		"oversize_rate":          t.OversizeRate,
		"overweight_rate_per_kg": t.OverweightRatePerKg,
		"fragile_rate":           t.FragileRate,
		"urgent_rate":            t.UrgentRate,
		"updated_at":             t.UpdatedAt,
	}).Where(sq.Eq{"id": t.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update tier: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update tier %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *PostgresStorage) DeleteTier(ctx context.Context, id string) error {
	query, args, err := psql.Delete("rate_tiers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete tier: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete tier %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *PostgresStorage) UpsertPackage(ctx context.Context, p *models.Package) error {
	now := r.now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	query, args, err := psql.Insert("packages").Columns(packageColumns...).Values(
		p.ID, p.MerchantID, p.TrackingNumber,
		p.Receiver.Name, p.Receiver.Phone, p.Receiver.Address, p.Receiver.City,
		p.Dimensions.Width, p.Dimensions.Length, p.Dimensions.Height, p.Dimensions.Weight,
		p.Dimensions.IsFragile, p.Dimensions.IsUrgent,
		p.TierID, p.CODAmount, p.ShippingFee, string(p.Status), p.CreatedAt, p.UpdatedAt,
	).Suffix(`ON CONFLICT (id) DO UPDATE
		SET merchant_id = EXCLUDED.merchant_id,
			tracking_number = EXCLUDED.tracking_number,
			receiver_name = EXCLUDED.receiver_name,
			receiver_phone = EXCLUDED.receiver_phone,
			receiver_address = EXCLUDED.receiver_address,
			receiver_city = EXCLUDED.receiver_city,
			width = EXCLUDED.width,
			length = EXCLUDED.length,
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			is_fragile = EXCLUDED.is_fragile,
			is_urgent = EXCLUDED.is_urgent,
			tier_id = EXCLUDED.tier_id,
			cod_amount = EXCLUDED.cod_amount,
			shipping_fee = EXCLUDED.shipping_fee,
			updated_at = EXCLUDED.updated_at
		WHERE packages.status = 'registered' AND packages.merchant_id = EXCLUDED.merchant_id`).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("upsert package: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("upsert package %s: past registration or owned by another merchant: %w", p.ID, ErrConflict)
	}
	return nil
}

func (r *PostgresStorage) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	query, args, err := psql.Select(packageColumns...).From("packages").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	p, err := scanPackage(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("get package %s: %w", id, mapError(err))
	}
	return p, nil
}

func (r *PostgresStorage) ListPackagesByMerchant(ctx context.Context, merchantID string, limit, offset uint64) ([]models.Package, error) {
	query, args, err := psql.Select(packageColumns...).From("packages").
		Where(sq.Eq{"merchant_id": merchantID}).
		OrderBy("created_at DESC", "id").
		Limit(limit).Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query packages: %w", err)
	}
	defer rows.Close()

	packages := make([]models.Package, 0, limit)
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		packages = append(packages, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan package rows: %w", err)
	}
	return packages, nil
}

// UpdatePackageStatus меняет статус только если текущий статус равен from.
func (r *PostgresStorage) UpdatePackageStatus(ctx context.Context, id string, from, to models.PackageStatus) error {
	query, args, err := psql.Update("packages").
		Set("status", string(to)).
		Set("updated_at", r.now().UTC()).
		Where(sq.Eq{"id": id, "status": string(from)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update package status: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update package %s status %s -> %s: %w", id, from, to, ErrConflict)
	}
	return nil
}

func scanTier(row pgx.Row) (*models.RateTier, error) {
	t := &models.RateTier{}
	if err := row.Scan(&t.ID, &t.Name, &t.BaseRate, &t.BaseWeight, &t.OversizeRate,
		&t.OverweightRatePerKg, &t.FragileRate, &t.UrgentRate, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

func scanPackage(row pgx.Row) (*models.Package, error) {
	p := &models.Package{}
	var status string
	if err := row.Scan(&p.ID, &p.MerchantID, &p.TrackingNumber,
		&p.Receiver.Name, &p.Receiver.Phone, &p.Receiver.Address, &p.Receiver.City,
		&p.Dimensions.Width, &p.Dimensions.Length, &p.Dimensions.Height, &p.Dimensions.Weight,
		&p.Dimensions.IsFragile, &p.Dimensions.IsUrgent,
		&p.TierID, &p.CODAmount, &p.ShippingFee, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Status = models.PackageStatus(status)
	return p, nil
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		}
	}
	return err
}
