package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ateliershop/storefront/internal/cart/domain"
	"github.com/ateliershop/storefront/internal/pricing"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// SlotKey is the fixed storage key holding the serialized cart.
const SlotKey = "cart"

// Service is the cart store. Persistent storage is the source of
// truth: every operation reloads the slot before acting and every
// mutation writes it back before returning, so all views within a
// session stay consistent.
type Service struct {
	store   Storage
	catalog Catalog
	log     *slog.Logger
}

func NewService(store Storage, catalog Catalog, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, catalog: catalog, log: log}
}

func (s *Service) load(ctx context.Context) domain.Cart {
	raw, err := s.store.Get(ctx, SlotKey)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn("cart slot unreadable, starting empty", slog.Any("err", err))
		}
		return domain.Cart{}
	}

	var lines []domain.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		s.log.Warn("cart slot corrupt, starting empty", slog.Any("err", err))
		return domain.Cart{}
	}
	return domain.Cart{Lines: lines}
}

func (s *Service) save(ctx context.Context, cart domain.Cart) error {
	raw, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("serialize cart: %w", err)
	}
	if err := s.store.Put(ctx, SlotKey, raw); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// AddItem resolves the product and merges quantity into an existing
// line, or appends a snapshot line. The updated order summary is
// returned for immediate display.
func (s *Service) AddItem(ctx context.Context, productID, quantity int) (pricing.Summary, error) {
	if quantity <= 0 {
		return pricing.Summary{}, ErrInvalidQuantity
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return pricing.Summary{}, err
	}

	cart := s.load(ctx)
	if line := cart.Find(productID); line != nil {
		line.Quantity += quantity
	} else {
		cart.Lines = append(cart.Lines, domain.Line{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}

	if err := s.save(ctx, cart); err != nil {
		return pricing.Summary{}, err
	}
	return pricing.Compute(cart.Lines), nil
}

// RemoveItem deletes the line if present; removing an absent product
// is not an error.
func (s *Service) RemoveItem(ctx context.Context, productID int) error {
	cart := s.load(ctx)
	if !cart.Remove(productID) {
		return nil
	}
	return s.save(ctx, cart)
}

// SetQuantity overwrites a line's quantity. Zero or negative removes
// the line; an id not in the cart is a no-op.
func (s *Service) SetQuantity(ctx context.Context, productID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	cart := s.load(ctx)
	line := cart.Find(productID)
	if line == nil {
		return nil
	}
	line.Quantity = quantity
	return s.save(ctx, cart)
}

// Lines returns the current ordered snapshot, re-synchronized from
// storage.
func (s *Service) Lines(ctx context.Context) []domain.Line {
	return s.load(ctx).Lines
}

// ItemCount sums quantities across all lines.
func (s *Service) ItemCount(ctx context.Context) int {
	cart := s.load(ctx)
	return cart.ItemCount()
}

// Summary recomputes the order summary for the persisted cart.
func (s *Service) Summary(ctx context.Context) pricing.Summary {
	return pricing.Compute(s.load(ctx).Lines)
}

// Clear resets the cart to empty. Nothing calls this automatically
// except checkout after a confirmed payment.
func (s *Service) Clear(ctx context.Context) error {
	return s.save(ctx, domain.Cart{})
}
