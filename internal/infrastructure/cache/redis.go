package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"skillmatch/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var ErrUnavailable = errors.New("redis unavailable")

const connectTimeout = 2 * time.Second

// Redis wraps the shared client. A Redis whose server could not be reached at
// startup stays usable and reports every call as bypassed.
type Redis struct {
	client *redis.Client
	log    zerolog.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr()).Msg("redis unavailable, rate limiting bypassed")
		_ = client.Close()
		return &Redis{log: log}
	}

	return &Redis{client: client, log: log}
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.log.Warn().Err(err).Msg("redis call failed, bypassing")
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if !r.Available() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

// IncrWindow bumps the counter for key and gives it an expiry of window when it
// has none, so a key that lost its TTL heals on the next hit. ok is false when
// Redis is bypassed and the count is meaningless.
func (r *Redis) IncrWindow(ctx context.Context, key string, window time.Duration) (count int64, ok bool, err error) {
	if !r.Available() {
		return 0, false, nil
	}

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	if window > 0 {
		pipe.ExpireNX(ctx, key, window)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.warnUnavailableOnce(err)
		return 0, false, err
	}
	return incr.Val(), true, nil
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}
