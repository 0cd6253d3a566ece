package app

import (
	"context"

	"github.com/ateliershop/storefront/internal/catalog/domain"
)

// Source fetches the full product list from the external catalog
// resource. It is consulted exactly once per session.
type Source interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}
