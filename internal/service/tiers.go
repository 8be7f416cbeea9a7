package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/RoGogDBD/parcelrate/internal/pricing"
	"github.com/RoGogDBD/parcelrate/internal/repository"
	"go.uber.org/zap"
)

func (s *Service) ListTiers(ctx context.Context) ([]models.RateTier, error) {
	tiers, err := s.tiers.ListTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}
	if tiers == nil {
		tiers = []models.RateTier{}
	}
	return tiers, nil
}

// GetTier возвращает тариф из кеша, при промахе - из хранилища с записью в кеш.
func (s *Service) GetTier(ctx context.Context, id string) (*models.RateTier, error) {
	if err := parseID("tier", id); err != nil {
		return nil, err
	}

	tier, err := s.cache.Get(ctx, id)
	if err == nil {
		s.metrics.CacheLookup(ctx, true)
		return tier, nil
	}
	s.metrics.CacheLookup(ctx, false)
	if !errors.Is(err, repository.ErrCacheMiss) {
		s.log.Warn("tier cache lookup failed", zap.String("tier_id", id), zap.Error(err))
	}

	tier, err = s.tiers.GetTier(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTier, id)
	}
	if err != nil {
		return nil, err
	}
	s.cache.Save(ctx, tier)
	return tier, nil
}

func (s *Service) CreateTier(ctx context.Context, tier models.RateTier) (*models.RateTier, error) {
	if err := s.validateStruct(tier); err != nil {
		return nil, err
	}
	if err := pricing.ValidateTier(tier); err != nil {
		return nil, err
	}
	tier.ID = s.newID()

	if err := s.tiers.CreateTier(ctx, &tier); err != nil {
		return nil, fmt.Errorf("create tier: %w", err)
	}
	s.cache.Save(ctx, &tier)
	s.log.Info("rate tier created", zap.String("tier_id", tier.ID), zap.String("name", tier.Name))
	return &tier, nil
}

// UpdateTier применяет частичное изменение к актуальной версии тарифа из хранилища.
func (s *Service) UpdateTier(ctx context.Context, id string, patch models.RateTierPatch) (*models.RateTier, error) {
	if err := parseID("tier", id); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidPayload)
	}
	if err := s.validateStruct(patch); err != nil {
		return nil, err
	}

	current, err := s.tiers.GetTier(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTier, id)
	}
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(*current)
	if err := pricing.ValidateTier(updated); err != nil {
		return nil, err
	}
	if err := s.tiers.UpdateTier(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTier, id)
		}
		return nil, fmt.Errorf("update tier: %w", err)
	}
	s.cache.Save(ctx, &updated)
	s.log.Info("rate tier updated", zap.String("tier_id", id))
	return &updated, nil
}

func (s *Service) DeleteTier(ctx context.Context, id string) error {
	if err := parseID("tier", id); err != nil {
		return err
	}
	if err := s.tiers.DeleteTier(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownTier, id)
		}
		return fmt.Errorf("delete tier: %w", err)
	}
	s.cache.Delete(ctx, id)
	s.log.Info("rate tier deleted", zap.String("tier_id", id))
	return nil
}

// WarmCache загружает все тарифы в кеш и возвращает их количество.
func (s *Service) WarmCache(ctx context.Context) (int, error) {
	tiers, err := s.tiers.ListTiers(ctx)
	if err != nil {
		return 0, fmt.Errorf("warm cache: %w", err)
	}
	for i := range tiers {
		s.cache.Save(ctx, &tiers[i])
	}
	return len(tiers), nil
}
