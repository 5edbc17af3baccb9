package cache

import (
	"context"
	"testing"
	"time"
)

func TestInitializeWithoutRedisUsesNoop(t *testing.T) {
	prev := Default
	t.Cleanup(func() { Default = prev })

	if err := Initialize(context.Background(), "", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := Default.(Noop); !ok {
		t.Errorf("expected Noop cache, got %T", Default)
	}

	var dest map[string]string
	hit, err := Default.Get(context.Background(), "k", &dest)
	if err != nil || hit {
		t.Errorf("expected miss, got hit=%v err=%v", hit, err)
	}
}

func TestNewRedisCacheParsesAddress(t *testing.T) {
	tests := []struct{ url, addr string }{
		{"localhost:6379", "localhost:6379"},
		{"redis://:pass@cache.internal:6380/2", "cache.internal:6380"},
	}
	for _, tt := range tests {
		c, err := NewRedisCache(tt.url, time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := c.client.Options().Addr; got != tt.addr {
			t.Errorf("%s: expected %s, got %s", tt.url, tt.addr, got)
		}
		c.client.Close()
	}

	if _, err := NewRedisCache("redis://%zz", time.Minute); err == nil {
		t.Error("expected malformed URL to fail")
	}
}

func TestProjectDetailKey(t *testing.T) {
	if got := ProjectDetailKey("p1"); got != "designsync:project:p1:detail" {
		t.Errorf("unexpected key %s", got)
	}
}
