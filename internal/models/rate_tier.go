// Package models содержит доменные модели приложения.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTier описывает тарифную сетку доставки.
type RateTier struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name" validate:"required,max=128"`
	BaseRate            decimal.Decimal `json:"base_rate" swaggertype:"string" example:"10000"`
	BaseWeight          decimal.Decimal `json:"base_weight" swaggertype:"string" example:"5"`
	OversizeRate        decimal.Decimal `json:"oversize_rate" swaggertype:"string" example:"5000"`
	OverweightRatePerKg decimal.Decimal `json:"overweight_rate_per_kg" swaggertype:"string" example:"2000"`
	FragileRate         decimal.Decimal `json:"fragile_rate" swaggertype:"string" example:"3000"`
	UrgentRate          decimal.Decimal `json:"urgent_rate" swaggertype:"string" example:"4000"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// RateTierPatch содержит изменяемые поля тарифа. Nil означает "не менять".
type RateTierPatch struct {
	Name                *string          `json:"name,omitempty" validate:"omitempty,min=1,max=128"`
	BaseRate            *decimal.Decimal `json:"base_rate,omitempty" swaggertype:"string"`
	BaseWeight          *decimal.Decimal `json:"base_weight,omitempty" swaggertype:"string"`
	OversizeRate        *decimal.Decimal `json:"oversize_rate,omitempty" swaggertype:"string"`
	OverweightRatePerKg *decimal.Decimal `json:"overweight_rate_per_kg,omitempty" swaggertype:"string"`
	FragileRate         *decimal.Decimal `json:"fragile_rate,omitempty" swaggertype:"string"`
	UrgentRate          *decimal.Decimal `json:"urgent_rate,omitempty" swaggertype:"string"`
}

// Empty сообщает, что патч ничего не меняет.
func (p RateTierPatch) Empty() bool {
	return p.Name == nil && p.BaseRate == nil && p.BaseWeight == nil && p.OversizeRate == nil &&
		p.OverweightRatePerKg == nil && p.FragileRate == nil && p.UrgentRate == nil
}

// Apply применяет патч к копии тарифа.
func (p RateTierPatch) Apply(t RateTier) RateTier {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.BaseRate != nil {
		t.BaseRate = *p.BaseRate
	}
	if p.BaseWeight != nil {
		t.BaseWeight = *p.BaseWeight
	}
	if p.OversizeRate != nil {
		t.OversizeRate = *p.OversizeRate
	}
	if p.OverweightRatePerKg != nil {
		t.OverweightRatePerKg = *p.OverweightRatePerKg
	}
	if p.FragileRate != nil {
		t.FragileRate = *p.FragileRate
	}
	if p.UrgentRate != nil {
		t.UrgentRate = *p.UrgentRate
	}
	return t
}
