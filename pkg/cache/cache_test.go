package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "render:abc", []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "render:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if string(data) != "<svg/>" {
		t.Errorf("Get = %q, want %q", data, "<svg/>")
	}

	if err := c.Delete(ctx, "render:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "render:abc"); hit {
		t.Error("expected miss after delete")
	}
}

func TestFileCache_Expiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h3 := Hash([]byte("world")); h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestRenderKey(t *testing.T) {
	k := NewDefaultKeyer()
	src := Hash([]byte(`{"signal":[]}`))

	a := k.RenderKey(src, RenderKeyOpts{Kind: "signal", Skin: "default"})
	b := k.RenderKey(src, RenderKeyOpts{Kind: "signal", Skin: "default"})
	if a != b {
		t.Error("RenderKey should be deterministic")
	}

	c := k.RenderKey(src, RenderKeyOpts{Kind: "signal", Skin: "dark"})
	if a == c {
		t.Error("different options should produce different keys")
	}
	if got := a[:7]; got != "render:" {
		t.Errorf("key prefix = %q, want %q", got, "render:")
	}
}
