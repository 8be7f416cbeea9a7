// Package pricing содержит расчет стоимости доставки по тарифу.
package pricing

import (
	"fmt"
	"math"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// CurrencyPlaces - точность денежных сумм.
	CurrencyPlaces = 2
	// WeightPlaces - точность базового веса тарифа, кг.
	WeightPlaces = 3
)

// OversizeThreshold - объем в см³, выше которого взимается плата за габарит.
var OversizeThreshold = decimal.NewFromInt(1000)

// ValidateDimensions проверяет, что габариты и вес - конечные неотрицательные числа.
func ValidateDimensions(d models.PackageDimensions) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"width", d.Width},
		{"length", d.Length},
		{"height", d.Height},
		{"weight", d.Weight},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidInput, f.name, f.value)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidInput, f.name, f.value)
		}
	}
	return nil
}

// ValidateTier проверяет, что ставки тарифа неотрицательны и укладываются
// в точность хранения: суммы до копеек, базовый вес до граммов.
func ValidateTier(t models.RateTier) error {
	fields := []struct {
		name   string
		value  decimal.Decimal
		places int32
	}{
		{"base_rate", t.BaseRate, CurrencyPlaces},
		{"base_weight", t.BaseWeight, WeightPlaces},
		{"oversize_rate", t.OversizeRate, CurrencyPlaces},
		{"overweight_rate_per_kg", t.OverweightRatePerKg, CurrencyPlaces},
		{"fragile_rate", t.FragileRate, CurrencyPlaces},
		{"urgent_rate", t.UrgentRate, CurrencyPlaces},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s must be non-negative, got %s", ErrInvalidTier, f.name, f.value)
		}
		if !f.value.Equal(f.value.Truncate(f.places)) {
			return fmt.Errorf("%w: %s allows at most %d decimal places, got %s", ErrInvalidTier, f.name, f.places, f.value)
		}
	}
	return nil
}

// Volume возвращает объем посылки в см³.
func Volume(d models.PackageDimensions) decimal.Decimal {
	return decimal.NewFromFloat(d.Width).
		Mul(decimal.NewFromFloat(d.Length)).
		Mul(decimal.NewFromFloat(d.Height))
}

// Quote рассчитывает стоимость с разбивкой по надбавкам.
// Надбавки складываются без промежуточного округления, итог округляется до копеек.
func Quote(d models.PackageDimensions, t models.RateTier) (models.Quote, error) {
	if err := ValidateDimensions(d); err != nil {
		return models.Quote{}, err
	}
	if err := ValidateTier(t); err != nil {
		return models.Quote{}, err
	}

	q := models.Quote{
		TierID:   t.ID,
		TierName: t.Name,
		Volume:   Volume(d),
		Breakdown: models.Breakdown{
			Base:       t.BaseRate,
			Oversize:   decimal.Zero,
			Overweight: decimal.Zero,
			Fragile:    decimal.Zero,
			Urgent:     decimal.Zero,
		},
	}

	if q.Volume.GreaterThan(OversizeThreshold) {
		q.Breakdown.Oversize = t.OversizeRate
	}
	weight := decimal.NewFromFloat(d.Weight)
	if weight.GreaterThan(t.BaseWeight) {
		q.Breakdown.Overweight = weight.Sub(t.BaseWeight).Mul(t.OverweightRatePerKg)
	}
	if d.IsFragile {
		q.Breakdown.Fragile = t.FragileRate
	}
	if d.IsUrgent {
		q.Breakdown.Urgent = t.UrgentRate
	}

	b := q.Breakdown
	q.Total = b.Base.Add(b.Oversize).Add(b.Overweight).Add(b.Fragile).Add(b.Urgent).Round(CurrencyPlaces)
	q.Breakdown.Overweight = q.Breakdown.Overweight.Round(CurrencyPlaces)
	return q, nil
}

// ComputePrice возвращает итоговую стоимость доставки.
func ComputePrice(d models.PackageDimensions, t models.RateTier) (decimal.Decimal, error) {
	q, err := Quote(d, t)
	if err != nil {
		return decimal.Zero, err
	}
	return q.Total, nil
}
