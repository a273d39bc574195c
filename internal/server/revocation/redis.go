package revocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "shouxkream:revoked:"

type RedisDenylist struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

func NewRedisDenylist(client *redis.Client, prefix string) *RedisDenylist {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisDenylist{client: client, prefix: prefix, now: time.Now}
}

// Connect creates a Redis client and checks it answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("revocation: ping: %w", err)
	}

	return client, nil
}

// Revoke is a no-op for tokens that are already expired.
func (d *RedisDenylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := until.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, d.prefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revocation: set: %w", err)
	}
	return nil
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := d.client.Get(ctx, d.prefix+jti).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, fmt.Errorf("revocation: get: %w", err)
	}
}
