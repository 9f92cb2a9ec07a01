package cache

import (
	"context"
	"testing"
	"time"

	"github.com/schappie/backend/internal/domain"
)

func testProducts(names ...string) []domain.Product {
	out := make([]domain.Product, len(names))
	for i, n := range names {
		out[i] = domain.Product{Store: domain.StoreAH, ID: n, Name: n}
	}
	return out
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	catalog := testProducts("Halfvolle melk", "Bananen")
	if err := cache.Set(ctx, "catalog:normalized", catalog, 1*time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := cache.Get(ctx, "catalog:normalized")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "Halfvolle melk" {
		t.Errorf("Get() = %v, want stored catalog", got)
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	err := cache.Set(ctx, "expires-soon", testProducts("Melk"), 1*time.Millisecond)
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := cache.Get(ctx, "expires-soon"); err != domain.ErrCacheMiss {
		t.Errorf("Expected cache miss after expiration, got error = %v", err)
	}

	exists, err := cache.Exists(ctx, "expires-soon")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true for expired entry, want false")
	}
}

func TestMemoryCache_Get_CacheMiss(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_, err := cache.Get(ctx, "non-existent-key")
	if err != domain.ErrCacheMiss {
		t.Errorf("Get() error = %v, want %v", err, domain.ErrCacheMiss)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	key := "delete-test"
	if err := cache.Set(ctx, key, testProducts("Melk"), 1*time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Errorf("Delete() error = %v", err)
	}

	if _, err := cache.Get(ctx, key); err != domain.ErrCacheMiss {
		t.Errorf("Get() after delete error = %v, want %v", err, domain.ErrCacheMiss)
	}
}

func TestMemoryCache_Exists(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	exists, err := cache.Exists(ctx, "missing")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true for missing key, want false")
	}

	if err := cache.Set(ctx, "present", testProducts("Melk"), 1*time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	exists, err = cache.Exists(ctx, "present")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false for live key, want true")
	}
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "a", testProducts("Melk"), 1*time.Minute)
	_ = cache.Set(ctx, "b", testProducts("Brood"), 1*time.Minute)

	if got := cache.Size(); got != 2 {
		t.Errorf("Size() = %d, want 2", got)
	}

	cache.Clear()

	if got := cache.Size(); got != 0 {
		t.Errorf("Size() after Clear() = %d, want 0", got)
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			_ = cache.Set(ctx, "shared", testProducts("Melk"), 1*time.Minute)
		}
		close(done)
	}()
	for i := 0; i < 100; i++ {
		_, _ = cache.Get(ctx, "shared")
	}
	<-done
}
