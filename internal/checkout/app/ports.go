package app

import (
	"context"

	cartdomain "github.com/ateliershop/storefront/internal/cart/domain"
	"github.com/ateliershop/storefront/internal/checkout/domain"
)

// Cart is the slice of the cart store checkout needs: the current
// lines and the clear that follows a confirmed payment.
type Cart interface {
	Lines(ctx context.Context) []cartdomain.Line
	Clear(ctx context.Context) error
}

// Payment is the external payment collaborator. Charge blocks until
// the collaborator answers or ctx is cancelled.
type Payment interface {
	Charge(ctx context.Context, intent domain.PaymentIntent) error
}
