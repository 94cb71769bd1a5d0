package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pricescope/client/internal/domain"
)

func sampleResults() []domain.ComparisonResult {
	return []domain.ComparisonResult{
		domain.NewComparisonResult(map[domain.Retailer]*domain.RetailerOffer{
			domain.RetailerFlipkart: {Title: "iPhone 15", CurrentPrice: "₹50,000"},
		}),
	}
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "compare:iphone 15", sampleResults(), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := c.Get(ctx, "compare:iphone 15")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Get() returned %d results, want 1", len(got))
	}
	if got[0].Prices[domain.RetailerFlipkart] != 50000 {
		t.Errorf("cached price = %d, want 50000", got[0].Prices[domain.RetailerFlipkart])
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache()

	_, err := c.Get(context.Background(), "compare:nothing")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "compare:iphone 15", sampleResults(), 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	if _, err := c.Get(ctx, "compare:iphone 15"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() after expiry error = %v, want ErrCacheMiss", err)
	}

	exists, _ := c.Exists(ctx, "compare:iphone 15")
	if exists {
		t.Error("Exists() = true after expiry, want false")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "compare:iphone 15", sampleResults(), time.Minute)
	c.Delete(ctx, "compare:iphone 15")

	if _, err := c.Get(ctx, "compare:iphone 15"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() after delete error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_GetReturnsIndependentSlice(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "compare:iphone 15", sampleResults(), time.Minute)

	first, _ := c.Get(ctx, "compare:iphone 15")
	first[0] = domain.NewComparisonResult(map[domain.Retailer]*domain.RetailerOffer{})

	second, _ := c.Get(ctx, "compare:iphone 15")
	if second[0].Prices[domain.RetailerFlipkart] != 50000 {
		t.Error("mutating a returned slice must not affect the cached copy")
	}
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "compare:a", sampleResults(), time.Minute)
	c.Set(ctx, "compare:b", sampleResults(), time.Minute)

	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", c.Size())
	}
}
