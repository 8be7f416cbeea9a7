package mocks

import (
	"context"
	"errors"

	"github.com/RoGogDBD/parcelrate/internal/models"
)

type PackageStoreMock struct {
	UpsertPackageFunc          func(ctx context.Context, p *models.Package) error
	GetPackageFunc             func(ctx context.Context, id string) (*models.Package, error)
	ListPackagesByMerchantFunc func(ctx context.Context, merchantID string, limit, offset uint64) ([]models.Package, error)
	UpdatePackageStatusFunc    func(ctx context.Context, id string, from, to models.PackageStatus) error
	UpsertCalls                int
	GetCalls                   int
	ListCalls                  int
	UpdateStatusCalls          int
}

func (m *PackageStoreMock) UpsertPackage(ctx context.Context, p *models.Package) error {
	m.UpsertCalls++
	if m.UpsertPackageFunc == nil {
		return errors.New("UpsertPackageFunc not set")
	}
	return m.UpsertPackageFunc(ctx, p)
}

func (m *PackageStoreMock) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	m.GetCalls++
	if m.GetPackageFunc == nil {
		return nil, errors.New("GetPackageFunc not set")
	}
	return m.GetPackageFunc(ctx, id)
}

func (m *PackageStoreMock) ListPackagesByMerchant(ctx context.Context, merchantID string, limit, offset uint64) ([]models.Package, error) {
	m.ListCalls++
	if m.ListPackagesByMerchantFunc == nil {
		return nil, errors.New("ListPackagesByMerchantFunc not set")
	}
	return m.ListPackagesByMerchantFunc(ctx, merchantID, limit, offset)
}

func (m *PackageStoreMock) UpdatePackageStatus(ctx context.Context, id string, from, to models.PackageStatus) error {
	m.UpdateStatusCalls++
	if m.UpdatePackageStatusFunc == nil {
		return errors.New("UpdatePackageStatusFunc not set")
	}
	return m.UpdatePackageStatusFunc(ctx, id, from, to)
}
