package repository

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/RoGogDBD/parcelrate/internal/models"
)

type (
	// MemStorage - LRU-кеш тарифов с опциональным TTL.
	MemStorage struct {
		tiers    map[string]*list.Element
		lruList  *list.List
		mu       sync.Mutex
		maxItems int
		ttl      time.Duration
		now      func() time.Time
	}

	cacheEntry struct {
		key       string
		tier      models.RateTier
		expiresAt time.Time
	}
)

func NewMemStorage() *MemStorage {
	return NewMemStorageWithConfig(1000, 0)
}

// NewMemStorageWithConfig создает кеш с ограничением размера и TTL (0 - без срока жизни).
func NewMemStorageWithConfig(maxItems int, ttl time.Duration) *MemStorage {
	if maxItems <= 0 {
		maxItems = 1000
	}
	return &MemStorage{
		tiers:    make(map[string]*list.Element),
		lruList:  list.New(),
		maxItems: maxItems,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemStorage) Save(_ context.Context, tier *models.RateTier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	if elem, exists := s.tiers[tier.ID]; exists {
		s.lruList.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		entry.tier = *tier
		entry.expiresAt = expiresAt
		return
	}

	if s.lruList.Len() >= s.maxItems {
		s.evictOldest()
	}

	elem := s.lruList.PushFront(&cacheEntry{
		key:       tier.ID,
		tier:      *tier,
		expiresAt: expiresAt,
	})
	s.tiers[tier.ID] = elem
}

func (s *MemStorage) Get(_ context.Context, id string) (*models.RateTier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, exists := s.tiers[id]
	if !exists {
		return nil, ErrCacheMiss
	}
	entry := elem.Value.(*cacheEntry)
	if s.expired(entry) {
		s.remove(elem)
		return nil, ErrCacheMiss
	}

	// Перемещаем в начало (использован недавно)
	s.lruList.MoveToFront(elem)
	tier := entry.tier
	return &tier, nil
}

func (s *MemStorage) Delete(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, exists := s.tiers[id]; exists {
		s.remove(elem)
	}
}

// StartJanitor периодически удаляет просроченные записи до отмены ctx.
func (s *MemStorage) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.purgeExpired()
			}
		}
	}()
}

func (s *MemStorage) purgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for elem := s.lruList.Back(); elem != nil; {
		prev := elem.Prev()
		if s.expired(elem.Value.(*cacheEntry)) {
			s.remove(elem)
			purged++
		}
		elem = prev
	}
	return purged
}

func (s *MemStorage) expired(e *cacheEntry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}

func (s *MemStorage) evictOldest() {
	if elem := s.lruList.Back(); elem != nil {
		s.remove(elem)
	}
}

func (s *MemStorage) remove(elem *list.Element) {
	s.lruList.Remove(elem)
	delete(s.tiers, elem.Value.(*cacheEntry).key)
}

func (s *MemStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lruList.Len()
}
