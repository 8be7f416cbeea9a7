package validation

import (
	"testing"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validPackage() models.Package {
	return models.Package{
		ID:             uuid.NewString(),
		MerchantID:     "merchant-1",
		TrackingNumber: "PR-0123ABCD",
		Receiver: models.Receiver{
			Name:    "Test",
			Phone:   "+79001234567",
			Address: "Street 1",
			City:    "City",
		},
		Dimensions: models.PackageDimensions{Width: 1, Length: 2, Height: 3, Weight: 1},
		TierID:     uuid.NewString(),
		CODAmount:  decimal.NewFromInt(150),
	}
}

func TestValidatePackage(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.Package)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *models.Package) {}},
		{name: "empty tracking allowed", mutate: func(p *models.Package) { p.TrackingNumber = "" }},
		{name: "bad phone", mutate: func(p *models.Package) { p.Receiver.Phone = "12-34" }, wantErr: true},
		{name: "bad tracking", mutate: func(p *models.Package) { p.TrackingNumber = "track" }, wantErr: true},
		{name: "missing merchant", mutate: func(p *models.Package) { p.MerchantID = "" }, wantErr: true},
		{name: "negative weight", mutate: func(p *models.Package) { p.Dimensions.Weight = -1 }, wantErr: true},
		{name: "negative cod", mutate: func(p *models.Package) { p.CODAmount = decimal.NewFromInt(-5) }, wantErr: true},
		{name: "tier not uuid", mutate: func(p *models.Package) { p.TierID = "standard" }, wantErr: true},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPackage()
			tt.mutate(&p)
			err := v.Struct(p)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
