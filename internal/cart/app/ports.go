package app

import (
	"context"

	"github.com/shopspring/decimal"
)

// Storage is a key-value slot store. Get reports sql.ErrNoRows for a
// slot that has never been written.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Catalog resolves product ids when lines are added; the cart keeps
// only the snapshot fields it needs.
type Catalog interface {
	Product(ctx context.Context, id int) (Product, error)
}

type Product struct {
	ID    int
	Name  string
	Price decimal.Decimal
	Image string
}
