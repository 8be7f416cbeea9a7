// Package retry реализует повтор операций с паузами между попытками.
package retry

import (
	"context"
	"math/bits"
	"math/rand/v2"
	"time"
)

// Backoff - экспоненциальная пауза base*2^attempt, ограниченная Cap.
// С Jitter пауза выбирается равномерно из [0, wait].
type Backoff struct {
	Base   time.Duration
	Cap    time.Duration
	Jitter bool
}

func NewBackoff(base, capDur time.Duration, jitter bool) *Backoff {
	if capDur > 0 && base > capDur {
		base = capDur
	}
	return &Backoff{Base: base, Cap: capDur, Jitter: jitter}
}

// WaitDuration возвращает паузу перед повтором номер attempt (с нуля).
func (b *Backoff) WaitDuration(attempt int) time.Duration {
	if b == nil || b.Base <= 0 || attempt < 0 {
		return 0
	}

	wait := b.limit(b.Base)
	// Сдвиг на attempt бит переполнит int64, если свободных старших битов не больше attempt.
	if attempt >= bits.LeadingZeros64(uint64(wait)) {
		wait = b.limit(time.Duration(1<<63 - 1))
	} else {
		wait = b.limit(wait << attempt)
	}

	if !b.Jitter || wait <= 0 {
		return wait
	}
	return time.Duration(rand.Int64N(int64(wait) + 1))
}

func (b *Backoff) limit(d time.Duration) time.Duration {
	if b.Cap > 0 && d > b.Cap {
		return b.Cap
	}
	return d
}

// Notify вызывается перед паузой: err - ошибка попытки attempt (с единицы).
type Notify func(err error, attempt int, wait time.Duration)

// Policy задает число повторов и паузы между ними.
// Без Backoff паузы берутся из Waits, последняя повторяется.
type Policy struct {
	MaxRetries  int
	Backoff     *Backoff
	Waits       []time.Duration
	ShouldRetry func(err error) bool
}

// Fixed - политика с заданными паузами, по одному повтору на паузу.
func Fixed(waits []time.Duration, shouldRetry func(err error) bool) Policy {
	return Policy{
		MaxRetries:  len(waits),
		Waits:       waits,
		ShouldRetry: shouldRetry,
	}
}

func (p Policy) wait(attempt int) time.Duration {
	switch {
	case p.Backoff != nil:
		return p.Backoff.WaitDuration(attempt)
	case len(p.Waits) == 0:
		return 0
	case attempt >= len(p.Waits):
		return p.Waits[len(p.Waits)-1]
	default:
		return p.Waits[attempt]
	}
}

func (p Policy) retryable(err error) bool {
	return p.ShouldRetry == nil || p.ShouldRetry(err)
}

// Do выполняет op, пока она не вернет nil, политика не откажется от повтора
// или не будет отменен ctx. Возвращает последнюю ошибку op либо ошибку ctx.
func Do(ctx context.Context, policy Policy, op func() error, onRetry Notify) error {
	retries := max(policy.MaxRetries, 0)

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := op()
		switch {
		case err == nil:
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case attempt == retries || !policy.retryable(err):
			return err
		}

		wait := policy.wait(attempt)
		if onRetry != nil {
			onRetry(err, attempt+1, wait)
		}
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
