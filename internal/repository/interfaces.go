package repository

import (
	"context"
	"errors"
	"time"

	"github.com/RoGogDBD/parcelrate/internal/models"
)

var (
	// ErrNotFound возвращается, когда запись отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrConflict возвращается при нарушении уникальности, внешнего ключа
	// или при конкурентном изменении статуса.
	ErrConflict = errors.New("conflict")
	// ErrCacheMiss возвращается кешем при отсутствии ключа.
	ErrCacheMiss = errors.New("cache miss")
)

// TierCacheReader описывает чтение тарифов из кеша.
type TierCacheReader interface {
	Get(ctx context.Context, id string) (*models.RateTier, error)
}

// TierCacheWriter описывает запись и инвалидацию тарифов в кеше.
type TierCacheWriter interface {
	Save(ctx context.Context, tier *models.RateTier)
	Delete(ctx context.Context, id string)
}

// TierCache описывает операции кеша тарифов.
type TierCache interface {
	TierCacheReader
	TierCacheWriter
	StartJanitor(ctx context.Context, interval time.Duration)
}

// TierStore описывает операции хранилища тарифов.
type TierStore interface {
	ListTiers(ctx context.Context) ([]models.RateTier, error)
	GetTier(ctx context.Context, id string) (*models.RateTier, error)
	CreateTier(ctx context.Context, t *models.RateTier) error
	UpdateTier(ctx context.Context, t *models.RateTier) error
	DeleteTier(ctx context.Context, id string) error
}

// PackageStore описывает операции хранилища посылок.
type PackageStore interface {
	UpsertPackage(ctx context.Context, p *models.Package) error
	GetPackage(ctx context.Context, id string) (*models.Package, error)
	ListPackagesByMerchant(ctx context.Context, merchantID string, limit, offset uint64) ([]models.Package, error)
	UpdatePackageStatus(ctx context.Context, id string, from, to models.PackageStatus) error
}
