// Package service содержит бизнес-логику тарифов, расчета стоимости и посылок.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/RoGogDBD/parcelrate/internal/pricing"
	"github.com/RoGogDBD/parcelrate/internal/repository"
	"github.com/RoGogDBD/parcelrate/internal/telemetry"
	"github.com/RoGogDBD/parcelrate/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrUnknownTier возвращается, если тариф не найден.
	ErrUnknownTier = errors.New("unknown rate tier")
	// ErrInvalidPayload возвращается при невалидных входных данных.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrInvalidTransition возвращается при недопустимой смене статуса посылки.
	ErrInvalidTransition = errors.New("invalid status transition")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// IsPermanent сообщает, что повтор операции не изменит результат.
func IsPermanent(err error) bool {
	for _, target := range []error{
		ErrUnknownTier, ErrInvalidPayload, ErrInvalidTransition,
		pricing.ErrInvalidInput, pricing.ErrInvalidTier,
		repository.ErrNotFound, repository.ErrConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Service объединяет хранилища, кеш тарифов и движок расчета.
type Service struct {
	tiers    repository.TierStore
	packages repository.PackageStore
	cache    repository.TierCache
	validate *validator.Validate
	metrics  *telemetry.Metrics
	log      *zap.Logger
	newID    func() string
	now      func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithIDGenerator(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

// New создает сервис.
func New(tiers repository.TierStore, packages repository.PackageStore, cache repository.TierCache, opts ...Option) *Service {
	s := &Service{
		tiers:    tiers,
		packages: packages,
		cache:    cache,
		validate: validation.New(),
		log:      zap.NewNop(),
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) validateStruct(v interface{}) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

func parseID(kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s id %q is not a UUID", ErrInvalidPayload, kind, id)
	}
	return nil
}
