package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces response keys in a shared database.
const DefaultRedisPrefix = "msf:"

// RedisOptions configures a [Redis] store.
type RedisOptions struct {
	Prefix string        // Key prefix; empty means DefaultRedisPrefix
	TTL    time.Duration // Entry lifetime; 0 keeps entries until overwritten
}

// Redis stores responses as Redis string values under Prefix+name.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis wraps an existing client. Close closes the client.
func NewRedis(client *redis.Client, opts RedisOptions) *Redis {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &Redis{client: client, prefix: prefix, ttl: opts.TTL}
}

// OpenRedis connects to the server at url (redis://[user:pass@]host:port/db)
// and verifies the connection with PING.
func OpenRedis(ctx context.Context, url string, opts RedisOptions) (*Redis, error) {
	o, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(o)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewRedis(client, opts), nil
}

// Get returns the value stored for name.
func (r *Redis) Get(ctx context.Context, name string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores data for name.
func (r *Redis) Set(ctx context.Context, name string, data []byte) error {
	return r.client.Set(ctx, r.key(name), data, r.ttl).Err()
}

// Delete removes name.
func (r *Redis) Delete(ctx context.Context, name string) error {
	return r.client.Del(ctx, r.key(name)).Err()
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) key(name string) string {
	return r.prefix + name
}

// Ensure Redis implements Store.
var _ Store = (*Redis)(nil)
