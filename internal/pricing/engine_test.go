package pricing

import (
	"math"
	"testing"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTier() models.RateTier {
	return models.RateTier{
		ID:                  "3f1c2b1a-7d8e-4a0b-9c1d-2e3f4a5b6c7d",
		Name:                "standard",
		BaseRate:            decimal.NewFromInt(10000),
		BaseWeight:          decimal.NewFromInt(5),
		OversizeRate:        decimal.NewFromInt(5000),
		OverweightRatePerKg: decimal.NewFromInt(2000),
		FragileRate:         decimal.NewFromInt(3000),
		UrgentRate:          decimal.NewFromInt(4000),
	}
}

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name string
		dims models.PackageDimensions
		want string
	}{
		{
			name: "volume at threshold, overweight, fragile",
			dims: models.PackageDimensions{Width: 10, Length: 10, Height: 10, Weight: 7, IsFragile: true},
			want: "17000",
		},
		{
			name: "oversize, under base weight, urgent",
			dims: models.PackageDimensions{Width: 20, Length: 10, Height: 10, Weight: 3, IsUrgent: true},
			want: "19000",
		},
		{
			name: "just over threshold",
			dims: models.PackageDimensions{Width: 10, Length: 10, Height: 10.0001, Weight: 1},
			want: "15000",
		},
		{
			name: "zero package",
			dims: models.PackageDimensions{},
			want: "10000",
		},
		{
			name: "fractional overweight",
			dims: models.PackageDimensions{Width: 1, Length: 1, Height: 1, Weight: 5.3333},
			want: "10666.6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePrice(tt.dims, testTier())
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestVolumeBoundary(t *testing.T) {
	tier := testTier()

	exact := models.PackageDimensions{Width: 10, Length: 10, Height: 10}
	require.True(t, Volume(exact).Equal(decimal.NewFromInt(1000)))
	q, err := Quote(exact, tier)
	require.NoError(t, err)
	assert.True(t, q.Breakdown.Oversize.IsZero())

	over := models.PackageDimensions{Width: 10, Length: 10, Height: 10.0001}
	require.True(t, Volume(over).Equal(decimal.RequireFromString("1000.01")))
	q, err = Quote(over, tier)
	require.NoError(t, err)
	assert.True(t, q.Breakdown.Oversize.Equal(tier.OversizeRate))
}

func TestFlagIndependence(t *testing.T) {
	tier := testTier()
	plain := models.PackageDimensions{Width: 5, Length: 5, Height: 5, Weight: 2}

	base, err := ComputePrice(plain, tier)
	require.NoError(t, err)

	fragile := plain
	fragile.IsFragile = true
	urgent := plain
	urgent.IsUrgent = true
	both := plain
	both.IsFragile, both.IsUrgent = true, true

	gotFragile, _ := ComputePrice(fragile, tier)
	gotUrgent, _ := ComputePrice(urgent, tier)
	gotBoth, _ := ComputePrice(both, tier)

	assert.True(t, gotFragile.Sub(base).Equal(tier.FragileRate))
	assert.True(t, gotUrgent.Sub(base).Equal(tier.UrgentRate))
	assert.True(t, gotBoth.Sub(base).Equal(tier.FragileRate.Add(tier.UrgentRate)))
}

func TestOverweightMonotonic(t *testing.T) {
	tier := testTier()
	prev := decimal.Zero
	for _, w := range []float64{5.5, 6, 7.25, 10, 100} {
		got, err := ComputePrice(models.PackageDimensions{Weight: w}, tier)
		require.NoError(t, err)
		assert.True(t, got.GreaterThan(prev), "weight %v: %s <= %s", w, got, prev)
		assert.True(t, got.GreaterThanOrEqual(tier.BaseRate))
		prev = got
	}
}

func TestComputePriceDeterministic(t *testing.T) {
	dims := models.PackageDimensions{Width: 12.5, Length: 30, Height: 8, Weight: 9.75, IsUrgent: true}
	first, err := ComputePrice(dims, testTier())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ComputePrice(dims, testTier())
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
	}
}

func TestComputePriceRounding(t *testing.T) {
	tier := testTier()
	tier.OverweightRatePerKg = decimal.RequireFromString("0.33")

	tests := []struct {
		name           string
		weight         float64
		wantTotal      string
		wantOverweight string
	}{
		{name: "half cent rounds up", weight: 5.5, wantTotal: "10000.17", wantOverweight: "0.17"},
		{name: "below half cent rounds down", weight: 6.1, wantTotal: "10000.36", wantOverweight: "0.36"},
		{name: "above half cent rounds up", weight: 7.03, wantTotal: "10000.67", wantOverweight: "0.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Quote(models.PackageDimensions{Weight: tt.weight}, tier)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, q.Total.StringFixed(CurrencyPlaces))
			assert.Equal(t, tt.wantOverweight, q.Breakdown.Overweight.StringFixed(CurrencyPlaces))
		})
	}
}

// Объем не округляется: 1000.004 см³ уже больше порога.
func TestVolumeNotRounded(t *testing.T) {
	dims := models.PackageDimensions{Width: 10, Length: 10, Height: 10.00004}
	require.True(t, Volume(dims).Equal(decimal.RequireFromString("1000.004")))

	got, err := ComputePrice(dims, testTier())
	require.NoError(t, err)
	assert.Equal(t, "15000.00", got.StringFixed(CurrencyPlaces))
}

func TestValidation(t *testing.T) {
	_, err := ComputePrice(models.PackageDimensions{Width: -1}, testTier())
	assert.ErrorIs(t, err, ErrInvalidInput)

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.NotPanics(t, func() {
			_, err = ComputePrice(models.PackageDimensions{Width: v, Length: 1, Height: 1}, testTier())
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "width %v", v)

		_, err = ComputePrice(models.PackageDimensions{Weight: v}, testTier())
		assert.ErrorIs(t, err, ErrInvalidInput, "weight %v", v)
	}

	_, err = ComputePrice(models.PackageDimensions{Weight: -0.5}, testTier())
	assert.ErrorIs(t, err, ErrInvalidInput)

	tier := testTier()
	tier.FragileRate = decimal.NewFromInt(-1)
	_, err = ComputePrice(models.PackageDimensions{}, tier)
	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestValidateTierPrecision(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RateTier)
		wantErr bool
	}{
		{name: "cents", mutate: func(t *models.RateTier) { t.OverweightRatePerKg = decimal.RequireFromString("1.25") }},
		{name: "trailing zero", mutate: func(t *models.RateTier) { t.FragileRate = decimal.RequireFromString("1.250") }},
		{name: "sub-cent rate", mutate: func(t *models.RateTier) { t.OverweightRatePerKg = decimal.RequireFromString("1.255") }, wantErr: true},
		{name: "grams", mutate: func(t *models.RateTier) { t.BaseWeight = decimal.RequireFromString("0.125") }},
		{name: "sub-gram weight", mutate: func(t *models.RateTier) { t.BaseWeight = decimal.RequireFromString("0.1255") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := testTier()
			tt.mutate(&tier)
			err := ValidateTier(tier)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTier)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
