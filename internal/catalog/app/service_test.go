package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ateliershop/storefront/internal/catalog/domain"
)

type fakeSource struct {
	products []domain.Product
	err      error
}

func (f fakeSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func loaded(t *testing.T, src Source) *Service {
	t.Helper()
	svc := NewService(src, discard())
	svc.Load(context.Background())
	return svc
}

func TestLoadFailureUsesFallback(t *testing.T) {
	svc := loaded(t, fakeSource{err: errors.New("network down")})

	all, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 10 {
		t.Fatalf("expected 10 fallback products, got %d", len(all))
	}

	p, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.Name != "Sunset Over Mountains" || !p.Price.Equal(decimal.NewFromInt(899)) {
		t.Fatalf("unexpected fallback product: %+v", p)
	}
}

func TestLoadEmptySourceUsesFallback(t *testing.T) {
	svc := loaded(t, fakeSource{products: nil})

	all, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 10 {
		t.Fatalf("expected fallback, got %d products", len(all))
	}
}

func TestReadersWaitForLoad(t *testing.T) {
	svc := NewService(fakeSource{products: FallbackProducts()}, discard())

	t.Run("cancelled before load resolves", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		if _, err := svc.GetAll(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline error, got %v", err)
		}
	})

	t.Run("read after load is synchronous", func(t *testing.T) {
		svc.Load(context.Background())
		all, err := svc.GetAll(context.Background())
		if err != nil || len(all) != 10 {
			t.Fatalf("got %d products, err %v", len(all), err)
		}
	})
}

func TestGetByIDNotFound(t *testing.T) {
	svc := loaded(t, fakeSource{products: FallbackProducts()})

	if _, err := svc.GetByID(context.Background(), 999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetFeatured(t *testing.T) {
	svc := loaded(t, fakeSource{products: FallbackProducts()})

	featured, err := svc.GetFeatured(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetFeatured: %v", err)
	}
	if len(featured) != 3 {
		t.Fatalf("expected 3 featured, got %d", len(featured))
	}
	for _, p := range featured {
		if !p.Featured {
			t.Fatalf("product %d is not featured", p.ID)
		}
	}
}

func TestGetByCategory(t *testing.T) {
	svc := loaded(t, fakeSource{products: FallbackProducts()})

	paintings, err := svc.GetByCategory(context.Background(), domain.CategoryPainting)
	if err != nil {
		t.Fatalf("GetByCategory: %v", err)
	}
	if len(paintings) != 6 {
		t.Fatalf("expected 6 paintings, got %d", len(paintings))
	}

	t.Run("invalid category", func(t *testing.T) {
		if _, err := svc.GetByCategory(context.Background(), "sculpture"); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestGetRelated(t *testing.T) {
	svc := loaded(t, fakeSource{products: FallbackProducts()})

	subject, err := svc.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	related, err := svc.GetRelated(context.Background(), subject, 3)
	if err != nil {
		t.Fatalf("GetRelated: %v", err)
	}
	if len(related) == 0 || len(related) > 3 {
		t.Fatalf("expected 1..3 related products, got %d", len(related))
	}
	for _, p := range related {
		if p.Category != domain.CategoryPainting {
			t.Fatalf("product %d has category %q", p.ID, p.Category)
		}
		if p.ID == subject.ID {
			t.Fatal("related products must exclude the subject")
		}
	}
}

func TestList(t *testing.T) {
	svc := loaded(t, fakeSource{products: FallbackProducts()})
	ctx := context.Background()

	t.Run("category filter", func(t *testing.T) {
		books, err := svc.List(ctx, Filter{Category: domain.CategoryBook})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(books) != 4 {
			t.Fatalf("expected 4 books, got %d", len(books))
		}
	})

	t.Run("price-low sort", func(t *testing.T) {
		all, err := svc.List(ctx, Filter{Sort: SortPriceLow})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		for i := 1; i < len(all); i++ {
			if all[i].Price.LessThan(all[i-1].Price) {
				t.Fatalf("not ascending at %d", i)
			}
		}
	})

	t.Run("price-high sort", func(t *testing.T) {
		all, err := svc.List(ctx, Filter{Sort: SortPriceHigh})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		for i := 1; i < len(all); i++ {
			if all[i-1].Price.LessThan(all[i].Price) {
				t.Fatalf("not descending at %d", i)
			}
		}
	})

	t.Run("newest sort", func(t *testing.T) {
		all, err := svc.List(ctx, Filter{Sort: SortNewest})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if all[0].ID != 10 {
			t.Fatalf("expected id 10 first, got %d", all[0].ID)
		}
	})

	t.Run("default sort puts featured first", func(t *testing.T) {
		all, err := svc.List(ctx, Filter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		for i := 0; i < 3; i++ {
			if !all[i].Featured {
				t.Fatalf("position %d not featured", i)
			}
		}
	})

	t.Run("unknown category -> invalid", func(t *testing.T) {
		if _, err := svc.List(ctx, Filter{Category: "sculpture"}); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
