package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackageStatus описывает состояние посылки.
type PackageStatus string

const (
	StatusRegistered PackageStatus = "registered"
	StatusInStorage  PackageStatus = "in_storage"
	StatusInTransit  PackageStatus = "in_transit"
	StatusDelivered  PackageStatus = "delivered"
	StatusReturned   PackageStatus = "returned"
	StatusCancelled  PackageStatus = "cancelled"
)

var transitions = map[PackageStatus][]PackageStatus{
	StatusRegistered: {StatusInStorage, StatusInTransit, StatusCancelled},
	StatusInStorage:  {StatusInTransit, StatusCancelled},
	StatusInTransit:  {StatusDelivered, StatusReturned},
}

// Valid сообщает, известен ли статус.
func (s PackageStatus) Valid() bool {
	switch s {
	case StatusRegistered, StatusInStorage, StatusInTransit, StatusDelivered, StatusReturned, StatusCancelled:
		return true
	}
	return false
}

// Terminal сообщает, что из статуса нет переходов.
func (s PackageStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// CanTransition проверяет допустимость перехода s -> next.
func (s PackageStatus) CanTransition(next PackageStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Receiver описывает получателя посылки.
type Receiver struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,phone"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// Package описывает посылку мерчанта.
type Package struct {
	ID             string            `json:"id" validate:"omitempty,uuid"`
	MerchantID     string            `json:"merchant_id" validate:"required"`
	TrackingNumber string            `json:"tracking_number" validate:"omitempty,tracking"`
	Receiver       Receiver          `json:"receiver"`
	Dimensions     PackageDimensions `json:"dimensions"`
	TierID         string            `json:"tier_id" validate:"required,uuid"`
	CODAmount      decimal.Decimal   `json:"cod_amount" swaggertype:"string" validate:"gte=0"`
	ShippingFee    decimal.Decimal   `json:"shipping_fee" swaggertype:"string"`
	Status         PackageStatus     `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// StatusUpdate описывает запрос смены статуса.
type StatusUpdate struct {
	Status PackageStatus `json:"status" validate:"required"`
}
