package redis

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/mustang1105/twilio-service/internal/log"
)

// Forever wraps go-redis with exponential-backoff retry. Operations retry
// until they succeed or the context is cancelled.
type Forever interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type redisForeverImpl struct {
	client          redis.UniversalClient
	logger          *log.Logger
	initialInterval time.Duration
	maxInterval     time.Duration
}

// NewForever creates a Redis helper with forever backoff retry logic.
func NewForever(
	client redis.UniversalClient,
	initialInterval time.Duration,
	maxInterval time.Duration,
	logger *log.Logger,
) Forever {
	if client == nil {
		panic("redis client is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	if initialInterval <= 0 {
		initialInterval = 100 * time.Millisecond
	}
	if maxInterval <= 0 {
		maxInterval = 10 * time.Second
	}

	return &redisForeverImpl{
		client:          client,
		logger:          logger,
		initialInterval: initialInterval,
		maxInterval:     maxInterval,
	}
}

func (r *redisForeverImpl) newForeverBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = 0 // forever
	return b
}

// retryWithBackoff tries the operation once first and only enters the retry
// loop when that attempt fails. redis.Nil is a result, not a failure.
func (r *redisForeverImpl) retryWithBackoff(ctx context.Context, operation func() error, operationName string) error {
	err := operation()
	if err == nil || err == redis.Nil {
		return err
	}

	r.logger.Warn("Redis operation failed, entering retry mode",
		log.String("operation", operationName),
		log.Error(err))

	b := r.newForeverBackoff()
	attempt := 1

	return backoff.Retry(func() error {
		select {
		case <-ctx.Done():
			return backoff.Permanent(ctx.Err())
		default:
		}

		attempt++
		err := operation()
		if err == redis.Nil {
			return backoff.Permanent(err)
		}
		if err != nil {
			r.logger.Warn("Redis operation retry failed",
				log.String("operation", operationName),
				log.Int("attempt", attempt),
				log.Error(err))
			return err
		}

		r.logger.Info("Redis operation recovered",
			log.String("operation", operationName),
			log.Int("total_attempts", attempt))
		return nil
	}, backoff.WithContext(b, ctx))
}

func (r *redisForeverImpl) Get(ctx context.Context, key string) (string, error) {
	var result string
	err := r.retryWithBackoff(ctx, func() error {
		val, err := r.client.Get(ctx, key).Result()
		if err != nil {
			return err
		}
		result = val
		return nil
	}, "Get")
	return result, err
}

func (r *redisForeverImpl) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return r.retryWithBackoff(ctx, func() error {
		return r.client.Set(ctx, key, value, expiration).Err()
	}, "Set")
}
