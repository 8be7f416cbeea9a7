package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const tierKeyPrefix = "parcelrate:tier:"

// RedisCache - общий для нескольких реплик кеш тарифов.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisCache(addr, username, password string, db int, ttl time.Duration, log *zap.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: client, ttl: ttl, log: log}
}

func (c *RedisCache) Get(ctx context.Context, id string) (*models.RateTier, error) {
	data, err := c.client.Get(ctx, tierKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	var tier models.RateTier
	if err := json.Unmarshal(data, &tier); err != nil {
		return nil, err
	}
	return &tier, nil
}

// Save не возвращает ошибку: недоступность кеша не должна ломать запись тарифа.
func (c *RedisCache) Save(ctx context.Context, tier *models.RateTier) {
	data, err := json.Marshal(tier)
	if err != nil {
		c.log.Warn("marshal tier for cache", zap.String("tier_id", tier.ID), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, tierKeyPrefix+tier.ID, data, c.ttl).Err(); err != nil {
		c.log.Warn("redis set failed", zap.String("tier_id", tier.ID), zap.Error(err))
	}
}

func (c *RedisCache) Delete(ctx context.Context, id string) {
	if err := c.client.Del(ctx, tierKeyPrefix+id).Err(); err != nil {
		c.log.Warn("redis del failed", zap.String("tier_id", id), zap.Error(err))
	}
}

// StartJanitor ничего не делает: Redis сам удаляет ключи по TTL.
func (c *RedisCache) StartJanitor(context.Context, time.Duration) {}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
