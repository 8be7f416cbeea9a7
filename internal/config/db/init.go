// Package db содержит инициализацию подключения к базе данных.
package db

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/RoGogDBD/parcelrate/internal/retry"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

var retryIntervals = []time.Duration{
	1 * time.Second,
	3 * time.Second,
	5 * time.Second,
}

// NewPool создает пул подключений к PostgreSQL с повторами и миграциями.
func NewPool(ctx context.Context, dsn, migrationsPath string, log *zap.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool

	policy := retry.Fixed(retryIntervals, IsRetriableError)
	onRetry := func(err error, attempt int, wait time.Duration) {
		log.Warn("retriable database error",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", len(retryIntervals)),
			zap.Duration("wait", wait),
		)
	}

	if err := retry.Do(ctx, policy, func() error {
		var err error
		pool, err = pgxpool.New(ctx, dsn)
		if err != nil {
			return err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return err
		}
		return nil
	}, onRetry); err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	log.Info("connected to PostgreSQL")

	if err := retry.Do(ctx, policy, func() error {
		return RunMigrations(migrationsPath, dsn, log)
	}, onRetry); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations after retries: %w", err)
	}

	return pool, nil
}

const connectionExceptionClass = "08"

// IsRetriableError сообщает об ошибках класса 08 (connection exception) и сетевых
// ошибках подключения. pgconn покрывает пул, lib/pq и net - миграции.
func IsRetriableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == connectionExceptionClass {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code.Class()) == connectionExceptionClass {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
