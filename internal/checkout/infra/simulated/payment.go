// Package simulated stands in for a real payment gateway. It charges
// nothing and answers after a short configurable delay, which keeps
// the checkout flow (and its cancellation path) honest without a
// gateway account.
package simulated

import (
	"context"
	"log/slog"
	"time"

	"github.com/ateliershop/storefront/internal/checkout/domain"
)

type Gateway struct {
	log   *slog.Logger
	delay time.Duration

	// FailWith, when set, makes every charge fail. Tests and demos use
	// it to exercise the retry path.
	FailWith error
}

func New(log *slog.Logger, delay time.Duration) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{log: log, delay: delay}
}

func (g *Gateway) Charge(ctx context.Context, intent domain.PaymentIntent) error {
	if g.delay > 0 {
		t := time.NewTimer(g.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	if g.FailWith != nil {
		return g.FailWith
	}

	g.log.Info("simulated charge accepted",
		slog.String("intent", intent.ID),
		slog.Int64("amount_minor", intent.AmountMinor),
		slog.String("currency", intent.Currency),
		slog.String("description", intent.Description),
	)
	return nil
}
