package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates and validates a go-redis client connection.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

const revocadasPrefix = "sesiones:revocadas:"

// SesionStore keeps the ids of logged-out sessions until they would have
// expired anyway.
type SesionStore struct {
	rdb *redis.Client
}

func NewSesionStore(rdb *redis.Client) *SesionStore { return &SesionStore{rdb: rdb} }

// Revocar marks a session id as logged out for ttl.
func (s *SesionStore) Revocar(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revocadasPrefix+jti, 1, ttl).Err()
}

// EstaRevocada reports whether jti was logged out.
func (s *SesionStore) EstaRevocada(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revocadasPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
