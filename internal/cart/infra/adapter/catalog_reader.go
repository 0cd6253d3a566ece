package adapter

import (
	"context"
	"errors"
	"fmt"

	cartapp "github.com/ateliershop/storefront/internal/cart/app"
	catalogapp "github.com/ateliershop/storefront/internal/catalog/app"
)

// CatalogServiceReader bridges the catalog service into the cart's
// resolver port, translating the catalog's not-found sentinel into the
// cart's.
type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) Product(ctx context.Context, id int) (cartapp.Product, error) {
	p, err := r.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) {
			return cartapp.Product{}, fmt.Errorf("%w: id %d", cartapp.ErrProductNotFound, id)
		}
		return cartapp.Product{}, err
	}

	return cartapp.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}, nil
}
