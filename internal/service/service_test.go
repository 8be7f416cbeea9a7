package service

import (
	"context"
	"errors"
	"testing"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/RoGogDBD/parcelrate/internal/pricing"
	"github.com/RoGogDBD/parcelrate/internal/repository"
	"github.com/RoGogDBD/parcelrate/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTier(id string) *models.RateTier {
	return &models.RateTier{
		ID:                  id,
		Name:                "standard",
		BaseRate:            decimal.NewFromInt(10000),
		BaseWeight:          decimal.NewFromInt(5),
		OversizeRate:        decimal.NewFromInt(5000),
		OverweightRatePerKg: decimal.NewFromInt(2000),
		FragileRate:         decimal.NewFromInt(3000),
		UrgentRate:          decimal.NewFromInt(4000),
	}
}

func missCache() *mocks.TierCacheMock {
	return &mocks.TierCacheMock{
		GetFunc: func(ctx context.Context, id string) (*models.RateTier, error) {
			return nil, repository.ErrCacheMiss
		},
	}
}

func TestGetTier(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name          string
		id            string
		cache         *mocks.TierCacheMock
		store         *mocks.TierStoreMock
		wantErr       error
		wantStoreGets int
		wantSaves     int
	}{
		{
			name: "cache hit",
			id:   id,
			cache: &mocks.TierCacheMock{
				GetFunc: func(ctx context.Context, id string) (*models.RateTier, error) {
					return testTier(id), nil
				},
			},
			store:         &mocks.TierStoreMock{},
			wantStoreGets: 0,
			wantSaves:     0,
		},
		{
			name:  "cache miss, store hit",
			id:    id,
			cache: missCache(),
			store: &mocks.TierStoreMock{
				GetTierFunc: func(ctx context.Context, id string) (*models.RateTier, error) {
					return testTier(id), nil
				},
			},
			wantStoreGets: 1,
			wantSaves:     1,
		},
		{
			name:  "unknown tier",
			id:    id,
			cache: missCache(),
			store: &mocks.TierStoreMock{
				GetTierFunc: func(ctx context.Context, id string) (*models.RateTier, error) {
					return nil, repository.ErrNotFound
				},
			},
			wantErr:       ErrUnknownTier,
			wantStoreGets: 1,
		},
		{
			name:    "malformed id",
			id:      "standard",
			cache:   missCache(),
			store:   &mocks.TierStoreMock{},
			wantErr: ErrInvalidPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(tt.store, &mocks.PackageStoreMock{}, tt.cache)
			tier, err := svc.GetTier(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, tier.ID)
			}
			assert.Equal(t, tt.wantStoreGets, tt.store.GetTierCalls)
			assert.Equal(t, tt.wantSaves, tt.cache.SaveCalls)
		})
	}
}

func TestCreateTier(t *testing.T) {
	id := uuid.NewString()
	store := &mocks.TierStoreMock{
		CreateTierFunc: func(ctx context.Context, tier *models.RateTier) error { return nil },
	}
	cache := missCache()
	svc := New(store, &mocks.PackageStoreMock{}, cache, WithIDGenerator(func() string { return id }))

	created, err := svc.CreateTier(context.Background(), *testTier(""))
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, 1, cache.SaveCalls)

	bad := *testTier("")
	bad.UrgentRate = decimal.NewFromInt(-1)
	_, err = svc.CreateTier(context.Background(), bad)
	assert.ErrorIs(t, err, pricing.ErrInvalidTier)

	subCent := *testTier("")
	subCent.OverweightRatePerKg = decimal.RequireFromString("1.255")
	_, err = svc.CreateTier(context.Background(), subCent)
	assert.ErrorIs(t, err, pricing.ErrInvalidTier)

	unnamed := *testTier("")
	unnamed.Name = ""
	_, err = svc.CreateTier(context.Background(), unnamed)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	assert.Equal(t, 1, store.CreateCalls)
}

func TestUpdateTier(t *testing.T) {
	id := uuid.NewString()
	var saved *models.RateTier
	store := &mocks.TierStoreMock{
		GetTierFunc: func(ctx context.Context, id string) (*models.RateTier, error) {
			return testTier(id), nil
		},
		UpdateTierFunc: func(ctx context.Context, tier *models.RateTier) error {
			saved = tier
			return nil
		},
	}
	svc := New(store, &mocks.PackageStoreMock{}, missCache())

	rate := decimal.NewFromInt(7000)
	updated, err := svc.UpdateTier(context.Background(), id, models.RateTierPatch{FragileRate: &rate})
	require.NoError(t, err)
	assert.True(t, updated.FragileRate.Equal(rate))
	assert.True(t, updated.UrgentRate.Equal(decimal.NewFromInt(4000)))
	require.NotNil(t, saved)
	assert.True(t, saved.FragileRate.Equal(rate))

	_, err = svc.UpdateTier(context.Background(), id, models.RateTierPatch{})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	negative := decimal.NewFromInt(-10)
	_, err = svc.UpdateTier(context.Background(), id, models.RateTierPatch{BaseRate: &negative})
	assert.ErrorIs(t, err, pricing.ErrInvalidTier)

	subCent := decimal.RequireFromString("0.005")
	_, err = svc.UpdateTier(context.Background(), id, models.RateTierPatch{UrgentRate: &subCent})
	assert.ErrorIs(t, err, pricing.ErrInvalidTier)
	assert.Equal(t, 1, store.UpdateCalls)
}

func TestDeleteTierInvalidatesCache(t *testing.T) {
	id := uuid.NewString()
	cache := missCache()
	store := &mocks.TierStoreMock{
		DeleteTierFunc: func(ctx context.Context, id string) error { return nil },
	}
	svc := New(store, &mocks.PackageStoreMock{}, cache)

	require.NoError(t, svc.DeleteTier(context.Background(), id))
	assert.Equal(t, 1, cache.DeleteCalls)

	store.DeleteTierFunc = func(ctx context.Context, id string) error { return repository.ErrNotFound }
	assert.ErrorIs(t, svc.DeleteTier(context.Background(), id), ErrUnknownTier)
	assert.Equal(t, 1, cache.DeleteCalls)
}

func TestQuoteAllSortsByTotal(t *testing.T) {
	cheap := testTier(uuid.NewString())
	cheap.Name = "economy"
	cheap.BaseRate = decimal.NewFromInt(5000)
	pricey := testTier(uuid.NewString())
	pricey.Name = "express"
	pricey.BaseRate = decimal.NewFromInt(20000)

	store := &mocks.TierStoreMock{
		ListTiersFunc: func(ctx context.Context) ([]models.RateTier, error) {
			return []models.RateTier{*pricey, *testTier(uuid.NewString()), *cheap}, nil
		},
	}
	svc := New(store, &mocks.PackageStoreMock{}, missCache())

	quotes, err := svc.QuoteAll(context.Background(), models.PackageDimensions{Width: 1, Length: 1, Height: 1, Weight: 1})
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	assert.Equal(t, "economy", quotes[0].TierName)
	assert.Equal(t, "express", quotes[2].TierName)

	_, err = svc.QuoteAll(context.Background(), models.PackageDimensions{Height: -1})
	assert.ErrorIs(t, err, pricing.ErrInvalidInput)
}

func TestWarmCache(t *testing.T) {
	cache := missCache()
	store := &mocks.TierStoreMock{
		ListTiersFunc: func(ctx context.Context) ([]models.RateTier, error) {
			return []models.RateTier{*testTier(uuid.NewString()), *testTier(uuid.NewString())}, nil
		},
	}
	svc := New(store, &mocks.PackageStoreMock{}, cache)

	n, err := svc.WarmCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, cache.SaveCalls)
}

func TestIsPermanent(t *testing.T) {
	assert.True(t, IsPermanent(errors.Join(errors.New("ctx"), ErrUnknownTier)))
	assert.True(t, IsPermanent(pricing.ErrInvalidInput))
	assert.False(t, IsPermanent(errors.New("connection reset")))
}
