package tokenstore

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedPrefix = "revoked_token:"

// Store keeps revoked session tokens until they would have expired anyway.
// Sign-out writes here; the auth middleware checks here. With no Redis
// configured every method is a no-op and sign-out is purely client-side.
type Store struct {
	client *redis.Client
}

func New(addr string) *Store {
	if addr == "" {
		return &Store{}
	}
	return &Store{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *Store) Enabled() bool {
	return s != nil && s.client != nil
}

func (s *Store) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedPrefix+token, "1", ttl).Err()
}

func (s *Store) IsRevoked(ctx context.Context, token string) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}
	n, err := s.client.Exists(ctx, revokedPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
