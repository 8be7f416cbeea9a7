package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/RoGogDBD/parcelrate/internal/repository"
	"go.uber.org/zap"
)

const trackingPrefix = "PR-"

// Source описывает канал, по которому пришла посылка.
type Source string

const (
	SourceHTTP  Source = "http"
	SourceKafka Source = "kafka"
)

// RegisterPackage валидирует посылку, рассчитывает стоимость доставки и сохраняет ее.
// Повторная регистрация с тем же id перезаписывает посылку, пока она в статусе registered
// и принадлежит тому же мерчанту.
func (s *Service) RegisterPackage(ctx context.Context, p models.Package, source Source) (*models.Package, error) {
	if err := s.validateStruct(p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = s.newID()
	} else if err := s.checkOwner(ctx, p.ID, p.MerchantID); err != nil {
		return nil, err
	}
	if p.TrackingNumber == "" {
		p.TrackingNumber = trackingNumber(p.ID)
	}
	p.Status = models.StatusRegistered

	q, err := s.Quote(ctx, p.TierID, p.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("price package %s: %w", p.ID, err)
	}
	p.ShippingFee = q.Total

	if err := s.packages.UpsertPackage(ctx, &p); err != nil {
		return nil, fmt.Errorf("save package %s: %w", p.ID, err)
	}
	s.metrics.PackageRegistered(ctx, string(source))
	s.log.Info("package registered",
		zap.String("package_id", p.ID),
		zap.String("merchant_id", p.MerchantID),
		zap.String("shipping_fee", p.ShippingFee.String()),
		zap.String("source", string(source)),
	)
	return &p, nil
}

func (s *Service) checkOwner(ctx context.Context, id, merchantID string) error {
	existing, err := s.packages.GetPackage(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup package %s: %w", id, err)
	}
	if existing.MerchantID != merchantID {
		return fmt.Errorf("%w: package %s belongs to another merchant", repository.ErrConflict, id)
	}
	return nil
}

func (s *Service) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	if err := parseID("package", id); err != nil {
		return nil, err
	}
	return s.packages.GetPackage(ctx, id)
}

// ListPackages возвращает страницу посылок мерчанта. limit 0 означает размер по умолчанию.
func (s *Service) ListPackages(ctx context.Context, merchantID string, limit, offset uint64) ([]models.Package, error) {
	if merchantID == "" {
		return nil, fmt.Errorf("%w: merchant id is required", ErrInvalidPayload)
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return s.packages.ListPackagesByMerchant(ctx, merchantID, limit, offset)
}

func (s *Service) UpdatePackageStatus(ctx context.Context, id string, next models.PackageStatus) (*models.Package, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidPayload, next)
	}
	p, err := s.GetPackage(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, next)
	}
	if err := s.packages.UpdatePackageStatus(ctx, id, p.Status, next); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		}
		return nil, err
	}
	s.log.Info("package status changed",
		zap.String("package_id", id),
		zap.String("from", string(p.Status)),
		zap.String("to", string(next)),
	)
	p.Status = next
	p.UpdatedAt = s.now().UTC()
	return p, nil
}

func trackingNumber(id string) string {
	compact := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(compact) > 12 {
		compact = compact[:12]
	}
	return trackingPrefix + compact
}
