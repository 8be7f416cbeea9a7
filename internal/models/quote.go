package models

import "github.com/shopspring/decimal"

// Breakdown содержит составляющие цены.
type Breakdown struct {
	Base       decimal.Decimal `json:"base" swaggertype:"string"`
	Oversize   decimal.Decimal `json:"oversize" swaggertype:"string"`
	Overweight decimal.Decimal `json:"overweight" swaggertype:"string"`
	Fragile    decimal.Decimal `json:"fragile" swaggertype:"string"`
	Urgent     decimal.Decimal `json:"urgent" swaggertype:"string"`
}

// Quote описывает расчет стоимости доставки по одному тарифу.
type Quote struct {
	TierID    string          `json:"tier_id"`
	TierName  string          `json:"tier_name,omitempty"`
	Volume    decimal.Decimal `json:"volume" swaggertype:"string"`
	Breakdown Breakdown       `json:"breakdown"`
	Total     decimal.Decimal `json:"total" swaggertype:"string" example:"17000"`
}

// QuoteRequest описывает запрос расчета стоимости.
type QuoteRequest struct {
	TierID     string            `json:"tier_id" validate:"required,uuid"`
	Dimensions PackageDimensions `json:"dimensions"`
}
