//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestRedisStore_Integration(t *testing.T) {
	url := os.Getenv("MSF_REDIS_URL")
	if url == "" {
		t.Skip("MSF_REDIS_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := OpenRedis(ctx, url, RedisOptions{Prefix: "msf-test:", TTL: time.Minute})
	if err != nil {
		t.Fatalf("OpenRedis() error: %v", err)
	}
	defer s.Close()

	name := "scoreboard-nfl-latest.json"
	t.Cleanup(func() { _ = s.Delete(context.Background(), name) })

	if _, hit, err := s.Get(ctx, name); err != nil || hit {
		t.Fatalf("Get before Set = hit %v, err %v", hit, err)
	}
	if err := s.Set(ctx, name, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := s.Get(ctx, name)
	if err != nil || !hit {
		t.Fatalf("Get after Set = hit %v, err %v", hit, err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("Get = %q", data)
	}
}
