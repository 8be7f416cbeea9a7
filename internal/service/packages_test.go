package service

import (
	"context"
	"testing"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/RoGogDBD/parcelrate/internal/repository"
	"github.com/RoGogDBD/parcelrate/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPackage(tierID string) models.Package {
	return models.Package{
		MerchantID: "merchant-1",
		Receiver: models.Receiver{
			Name:    "Test",
			Phone:   "+79001234567",
			Address: "Street 1",
			City:    "City",
		},
		Dimensions: models.PackageDimensions{Width: 10, Length: 10, Height: 10, Weight: 7, IsFragile: true},
		TierID:     tierID,
		CODAmount:  decimal.NewFromInt(250000),
	}
}

func tierStore() *mocks.TierStoreMock {
	return &mocks.TierStoreMock{
		GetTierFunc: func(ctx context.Context, id string) (*models.RateTier, error) {
			return testTier(id), nil
		},
	}
}

func TestRegisterPackage(t *testing.T) {
	var stored *models.Package
	packages := &mocks.PackageStoreMock{
		UpsertPackageFunc: func(ctx context.Context, p *models.Package) error {
			stored = p
			return nil
		},
	}
	id := uuid.NewString()
	svc := New(tierStore(), packages, missCache(), WithIDGenerator(func() string { return id }))

	got, err := svc.RegisterPackage(context.Background(), testPackage(uuid.NewString()), SourceHTTP)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, models.StatusRegistered, got.Status)
	assert.True(t, got.ShippingFee.Equal(decimal.NewFromInt(17000)), "fee %s", got.ShippingFee)
	assert.True(t, got.CODAmount.Equal(decimal.NewFromInt(250000)))
	assert.Regexp(t, `^PR-[0-9A-F]{12}$`, got.TrackingNumber)
	require.NotNil(t, stored)
	assert.Equal(t, got.TrackingNumber, stored.TrackingNumber)
}

func TestRegisterPackageOwnership(t *testing.T) {
	id := uuid.NewString()
	tests := []struct {
		name       string
		existing   *models.Package
		merchantID string
		wantErr    error
		wantUpsert int
	}{
		{name: "new id", merchantID: "merchant-1", wantUpsert: 1},
		{name: "same owner re-registers", existing: &models.Package{ID: id, MerchantID: "merchant-1"}, merchantID: "merchant-1", wantUpsert: 1},
		{name: "foreign owner", existing: &models.Package{ID: id, MerchantID: "merchant-1"}, merchantID: "merchant-2", wantErr: repository.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packages := &mocks.PackageStoreMock{
				GetPackageFunc: func(ctx context.Context, id string) (*models.Package, error) {
					if tt.existing == nil {
						return nil, repository.ErrNotFound
					}
					return tt.existing, nil
				},
				UpsertPackageFunc: func(ctx context.Context, p *models.Package) error { return nil },
			}
			svc := New(tierStore(), packages, missCache())

			p := testPackage(uuid.NewString())
			p.ID = id
			p.MerchantID = tt.merchantID
			_, err := svc.RegisterPackage(context.Background(), p, SourceKafka)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsPermanent(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, packages.GetCalls)
			assert.Equal(t, tt.wantUpsert, packages.UpsertCalls)
		})
	}
}

func TestRegisterPackageRejectsInvalid(t *testing.T) {
	packages := &mocks.PackageStoreMock{}
	svc := New(tierStore(), packages, missCache())

	p := testPackage(uuid.NewString())
	p.Receiver.Phone = "call me"
	_, err := svc.RegisterPackage(context.Background(), p, SourceKafka)
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.True(t, IsPermanent(err))
	assert.Equal(t, 0, packages.UpsertCalls)
}

func TestRegisterPackageUnknownTier(t *testing.T) {
	tiers := &mocks.TierStoreMock{
		GetTierFunc: func(ctx context.Context, id string) (*models.RateTier, error) {
			return nil, repository.ErrNotFound
		},
	}
	packages := &mocks.PackageStoreMock{}
	svc := New(tiers, packages, missCache())

	_, err := svc.RegisterPackage(context.Background(), testPackage(uuid.NewString()), SourceHTTP)
	assert.ErrorIs(t, err, ErrUnknownTier)
	assert.Equal(t, 0, packages.UpsertCalls)
}

func TestUpdatePackageStatus(t *testing.T) {
	tests := []struct {
		name    string
		current models.PackageStatus
		next    models.PackageStatus
		wantErr error
	}{
		{name: "registered to storage", current: models.StatusRegistered, next: models.StatusInStorage},
		{name: "transit to delivered", current: models.StatusInTransit, next: models.StatusDelivered},
		{name: "delivered is terminal", current: models.StatusDelivered, next: models.StatusReturned, wantErr: ErrInvalidTransition},
		{name: "skip transit", current: models.StatusRegistered, next: models.StatusDelivered, wantErr: ErrInvalidTransition},
		{name: "unknown status", current: models.StatusRegistered, next: "lost", wantErr: ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.NewString()
			packages := &mocks.PackageStoreMock{
				GetPackageFunc: func(ctx context.Context, id string) (*models.Package, error) {
					p := testPackage(uuid.NewString())
					p.ID = id
					p.Status = tt.current
					return &p, nil
				},
				UpdatePackageStatusFunc: func(ctx context.Context, id string, from, to models.PackageStatus) error {
					assert.Equal(t, tt.current, from)
					assert.Equal(t, tt.next, to)
					return nil
				},
			}
			svc := New(tierStore(), packages, missCache())

			got, err := svc.UpdatePackageStatus(context.Background(), id, tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, packages.UpdateStatusCalls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, got.Status)
			assert.Equal(t, 1, packages.UpdateStatusCalls)
		})
	}
}

func TestListPackagesClampsLimit(t *testing.T) {
	var gotLimit uint64
	packages := &mocks.PackageStoreMock{
		ListPackagesByMerchantFunc: func(ctx context.Context, merchantID string, limit, offset uint64) ([]models.Package, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := New(tierStore(), packages, missCache())

	_, err := svc.ListPackages(context.Background(), "m", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(DefaultPageSize), gotLimit)

	_, err = svc.ListPackages(context.Background(), "m", 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(MaxPageSize), gotLimit)

	_, err = svc.ListPackages(context.Background(), "", 10, 0)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
