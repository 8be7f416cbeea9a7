package mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/RoGogDBD/parcelrate/internal/models"
)

type TierCacheMock struct {
	SaveFunc          func(ctx context.Context, tier *models.RateTier)
	GetFunc           func(ctx context.Context, id string) (*models.RateTier, error)
	DeleteFunc        func(ctx context.Context, id string)
	StartJanitorFunc  func(ctx context.Context, interval time.Duration)
	SaveCalls         int
	GetCalls          int
	DeleteCalls       int
	StartJanitorCalls int

	mu sync.Mutex
}

func (m *TierCacheMock) Save(ctx context.Context, tier *models.RateTier) {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()
	if m.SaveFunc != nil {
		m.SaveFunc(ctx, tier)
	}
}

func (m *TierCacheMock) Get(ctx context.Context, id string) (*models.RateTier, error) {
	m.mu.Lock()
	m.GetCalls++
	m.mu.Unlock()
	if m.GetFunc == nil {
		return nil, errors.New("GetFunc not set")
	}
	return m.GetFunc(ctx, id)
}

func (m *TierCacheMock) Delete(ctx context.Context, id string) {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		m.DeleteFunc(ctx, id)
	}
}

func (m *TierCacheMock) StartJanitor(ctx context.Context, interval time.Duration) {
	m.mu.Lock()
	m.StartJanitorCalls++
	m.mu.Unlock()
	if m.StartJanitorFunc != nil {
		m.StartJanitorFunc(ctx, interval)
	}
}
