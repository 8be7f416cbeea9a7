package repository

import (
	"context"
	"testing"
	"time"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMemStorage(t *testing.T) {
	tests := []struct {
		name        string
		ttl         time.Duration
		advance     time.Duration
		expectFound bool
	}{
		{
			name:        "save and get",
			ttl:         0,
			advance:     time.Hour,
			expectFound: true,
		},
		{
			name:        "ttl not reached",
			ttl:         time.Minute,
			advance:     30 * time.Second,
			expectFound: true,
		},
		{
			name:        "ttl expiry",
			ttl:         time.Minute,
			advance:     time.Minute,
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			storage := NewMemStorageWithConfig(10, tt.ttl)
			storage.now = func() time.Time { return now }
			tier := testTier()

			storage.Save(context.Background(), tier)
			now = now.Add(tt.advance)

			got, err := storage.Get(context.Background(), tier.ID)
			if tt.expectFound {
				require.NoError(t, err)
				assert.Equal(t, tier.Name, got.Name)
			} else {
				assert.ErrorIs(t, err, ErrCacheMiss)
				assert.Equal(t, 0, storage.Len())
			}
		})
	}
}

func TestMemStorageEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	storage := NewMemStorageWithConfig(2, 0)

	a, b, c := testTier(), testTier(), testTier()
	storage.Save(ctx, a)
	storage.Save(ctx, b)

	_, err := storage.Get(ctx, a.ID)
	require.NoError(t, err)

	storage.Save(ctx, c)

	_, err = storage.Get(ctx, b.ID)
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = storage.Get(ctx, a.ID)
	assert.NoError(t, err)
	_, err = storage.Get(ctx, c.ID)
	assert.NoError(t, err)
}

func TestMemStorageReturnsCopy(t *testing.T) {
	ctx := context.Background()
	storage := NewMemStorage()
	tier := testTier()
	storage.Save(ctx, tier)

	got, err := storage.Get(ctx, tier.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := storage.Get(ctx, tier.ID)
	require.NoError(t, err)
	assert.Equal(t, tier.Name, again.Name)
}

func TestMemStorageDeleteAndPurge(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	storage := NewMemStorageWithConfig(10, time.Minute)
	storage.now = func() time.Time { return now }

	keep, drop, stale := testTier(), testTier(), testTier()
	storage.Save(ctx, stale)
	now = now.Add(45 * time.Second)
	storage.Save(ctx, keep)
	storage.Save(ctx, drop)

	storage.Delete(ctx, drop.ID)
	assert.Equal(t, 2, storage.Len())

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, storage.purgeExpired())
	_, err := storage.Get(ctx, keep.ID)
	assert.NoError(t, err)
}

func testTier() *models.RateTier {
	id := uuid.New().String()
	return &models.RateTier{
		ID:                  id,
		Name:                "tier-" + id[:8],
		BaseRate:            decimal.NewFromInt(10000),
		BaseWeight:          decimal.NewFromInt(5),
		OversizeRate:        decimal.NewFromInt(5000),
		OverweightRatePerKg: decimal.NewFromInt(2000),
		FragileRate:         decimal.NewFromInt(3000),
		UrgentRate:          decimal.NewFromInt(4000),
	}
}

func TestMemStorageJanitor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewMemStorageWithConfig(10, 20*time.Millisecond)
	s.StartJanitor(ctx, 5*time.Millisecond)

	s.Save(ctx, &models.RateTier{ID: uuid.NewString(), Name: "short-lived"})
	require.Equal(t, 1, s.Len())
	require.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	goleak.VerifyNone(t)
}
