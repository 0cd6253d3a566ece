package app

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/ateliershop/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Sort string

const (
	SortDefault   Sort = ""
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
	SortNewest    Sort = "newest"
)

// Filter narrows and orders a catalog listing.
type Filter struct {
	Category domain.Category
	Sort     Sort
}

// Service holds the session catalog. Load runs once; every reader
// waits for it before answering, so no consumer can observe a
// half-loaded catalog.
type Service struct {
	source Source
	log    *slog.Logger

	once     sync.Once
	ready    chan struct{}
	products []domain.Product
}

func NewService(source Source, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		source: source,
		log:    log,
		ready:  make(chan struct{}),
	}
}

// Load fetches the catalog from the source. Any failure substitutes the
// built-in fallback set so dependent views never see an empty store;
// the failure is logged and never retried.
func (s *Service) Load(ctx context.Context) {
	s.once.Do(func() {
		defer close(s.ready)

		products, err := s.source.Fetch(ctx)
		if err != nil || len(products) == 0 {
			if err == nil {
				err = errors.New("source returned no products")
			}
			s.log.Error("catalog load failed, using fallback", slog.Any("err", err))
			s.products = FallbackProducts()
			return
		}

		s.products = products
		s.log.Info("catalog loaded", slog.Int("products", len(products)))
	})
}

func (s *Service) await(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Product, error) {
	if err := s.await(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (domain.Product, error) {
	if err := s.await(ctx); err != nil {
		return domain.Product{}, err
	}
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (s *Service) GetFeatured(ctx context.Context, limit int) ([]domain.Product, error) {
	if err := s.await(ctx); err != nil {
		return nil, err
	}
	var out []domain.Product
	for _, p := range s.products {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Service) GetByCategory(ctx context.Context, cat domain.Category) ([]domain.Product, error) {
	if !cat.Valid() {
		return nil, ErrInvalidInput
	}
	if err := s.await(ctx); err != nil {
		return nil, err
	}
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetRelated returns up to limit products sharing the given product's
// category, never including the product itself.
func (s *Service) GetRelated(ctx context.Context, product domain.Product, limit int) ([]domain.Product, error) {
	if err := s.await(ctx); err != nil {
		return nil, err
	}
	var out []domain.Product
	for _, p := range s.products {
		if p.Category != product.Category || p.ID == product.ID {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// List applies the storefront listing filter: optional category
// narrowing plus one of the fixed sort orders.
func (s *Service) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	if f.Category != "" && !f.Category.Valid() {
		return nil, ErrInvalidInput
	}
	if err := s.await(ctx); err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[j].Price.LessThan(out[i].Price) })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}

	return out, nil
}
