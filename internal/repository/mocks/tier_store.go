package mocks

import (
	"context"
	"errors"

	"github.com/RoGogDBD/parcelrate/internal/models"
)

type TierStoreMock struct {
	ListTiersFunc  func(ctx context.Context) ([]models.RateTier, error)
	GetTierFunc    func(ctx context.Context, id string) (*models.RateTier, error)
	CreateTierFunc func(ctx context.Context, t *models.RateTier) error
	UpdateTierFunc func(ctx context.Context, t *models.RateTier) error
	DeleteTierFunc func(ctx context.Context, id string) error
	ListTiersCalls int
	GetTierCalls   int
	CreateCalls    int
	UpdateCalls    int
	DeleteCalls    int
}

func (m *TierStoreMock) ListTiers(ctx context.Context) ([]models.RateTier, error) {
	m.ListTiersCalls++
	if m.ListTiersFunc == nil {
		return nil, errors.New("ListTiersFunc not set")
	}
	return m.ListTiersFunc(ctx)
}

func (m *TierStoreMock) GetTier(ctx context.Context, id string) (*models.RateTier, error) {
	m.GetTierCalls++
	if m.GetTierFunc == nil {
		return nil, errors.New("GetTierFunc not set")
	}
	return m.GetTierFunc(ctx, id)
}

func (m *TierStoreMock) CreateTier(ctx context.Context, t *models.RateTier) error {
	m.CreateCalls++
	if m.CreateTierFunc == nil {
		return errors.New("CreateTierFunc not set")
	}
	return m.CreateTierFunc(ctx, t)
}

func (m *TierStoreMock) UpdateTier(ctx context.Context, t *models.RateTier) error {
	m.UpdateCalls++
	if m.UpdateTierFunc == nil {
		return errors.New("UpdateTierFunc not set")
	}
	return m.UpdateTierFunc(ctx, t)
}

func (m *TierStoreMock) DeleteTier(ctx context.Context, id string) error {
	m.DeleteCalls++
	if m.DeleteTierFunc == nil {
		return errors.New("DeleteTierFunc not set")
	}
	return m.DeleteTierFunc(ctx, id)
}
