package models

// PackageDimensions описывает габариты и признаки посылки.
// Размеры в сантиметрах, вес в килограммах.
type PackageDimensions struct {
	Width     float64 `json:"width" validate:"gte=0" example:"10"`
	Length    float64 `json:"length" validate:"gte=0" example:"10"`
	Height    float64 `json:"height" validate:"gte=0" example:"10"`
	Weight    float64 `json:"weight" validate:"gte=0" example:"7"`
	IsFragile bool    `json:"is_fragile"`
	IsUrgent  bool    `json:"is_urgent"`
}
