package store

import (
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestRedisKeyPrefix(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	if got := NewRedis(client, RedisOptions{}).key("a.json"); got != "msf:a.json" {
		t.Errorf("default key = %q, want msf:a.json", got)
	}
	if got := NewRedis(client, RedisOptions{Prefix: "feeds:"}).key("a.json"); got != "feeds:a.json" {
		t.Errorf("custom key = %q, want feeds:a.json", got)
	}
}
