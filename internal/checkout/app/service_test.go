package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	cartdomain "github.com/ateliershop/storefront/internal/cart/domain"
	"github.com/ateliershop/storefront/internal/checkout/domain"
)

type fakeCart struct {
	lines    []cartdomain.Line
	cleared  bool
	clearErr error
}

func (f *fakeCart) Lines(ctx context.Context) []cartdomain.Line { return f.lines }

func (f *fakeCart) Clear(ctx context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared = true
	f.lines = nil
	return nil
}

type fakePayment struct {
	err    error
	intent domain.PaymentIntent
	calls  int
}

func (f *fakePayment) Charge(ctx context.Context, intent domain.PaymentIntent) error {
	f.calls++
	f.intent = intent
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.err
}

func twoLines() []cartdomain.Line {
	return []cartdomain.Line{
		{ProductID: 1, Name: "Sunset Over Mountains", Price: decimal.NewFromInt(899), Quantity: 1},
		{ProductID: 3, Name: "Philosophical Musings", Price: decimal.NewFromInt(45), Quantity: 2},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestBeginEmptyCartAborts(t *testing.T) {
	svc := NewService(&fakeCart{}, &fakePayment{}, discard())

	if _, err := svc.Begin(context.Background()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if svc.State() != domain.StateAborted {
		t.Fatalf("expected aborted, got %s", svc.State())
	}

	t.Run("regardless of prior state", func(t *testing.T) {
		cart := &fakeCart{lines: twoLines()}
		svc := NewService(cart, &fakePayment{}, discard())
		if _, err := svc.Begin(context.Background()); err != nil {
			t.Fatalf("Begin: %v", err)
		}
		cart.lines = nil
		if _, err := svc.Begin(context.Background()); !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
		if svc.State() != domain.StateAborted {
			t.Fatalf("expected aborted, got %s", svc.State())
		}
	})
}

func TestBeginFreezesSummary(t *testing.T) {
	svc := NewService(&fakeCart{lines: twoLines()}, &fakePayment{}, discard())

	sum, err := svc.Begin(context.Background())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	// 899 + 2×45 = 989, free shipping, 8% tax.
	if !sum.Subtotal.Equal(decimal.NewFromInt(989)) {
		t.Fatalf("subtotal = %s", sum.Subtotal)
	}
	if !sum.Shipping.IsZero() {
		t.Fatalf("shipping = %s", sum.Shipping)
	}
	if svc.State() != domain.StateAwaitingChoice {
		t.Fatalf("state = %s", svc.State())
	}
}

func TestChooseBeforeBegin(t *testing.T) {
	svc := NewService(&fakeCart{lines: twoLines()}, &fakePayment{}, discard())

	if _, err := svc.Choose(context.Background(), domain.MethodStripe); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestStripeFlowSuccessClearsCart(t *testing.T) {
	cart := &fakeCart{lines: twoLines()}
	pay := &fakePayment{}
	svc := NewService(cart, pay, discard())
	ctx := context.Background()

	if _, err := svc.Begin(ctx); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	res, err := svc.Choose(ctx, domain.MethodStripe)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if res.State != domain.StateCompleted || !res.CartCleared {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !cart.cleared {
		t.Fatal("confirmed payment must clear the cart")
	}

	// 989 × 1.08 = 1068.12 → 106812 minor units.
	if pay.intent.AmountMinor != 106812 {
		t.Fatalf("amount minor = %d", pay.intent.AmountMinor)
	}
	if pay.intent.Currency != "GBP" || pay.intent.ID == "" {
		t.Fatalf("malformed intent: %+v", pay.intent)
	}
	if !strings.Contains(pay.intent.Description, "Philosophical Musings (x2)") {
		t.Fatalf("description = %q", pay.intent.Description)
	}
}

func TestStripeFlowFailureReturnsToChoice(t *testing.T) {
	cart := &fakeCart{lines: twoLines()}
	pay := &fakePayment{err: errors.New("card declined")}
	svc := NewService(cart, pay, discard())
	ctx := context.Background()

	if _, err := svc.Begin(ctx); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	_, err := svc.Choose(ctx, domain.MethodStripe)
	if !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("expected ErrPaymentFailed, got %v", err)
	}
	if svc.State() != domain.StateAwaitingChoice {
		t.Fatalf("state = %s, want awaiting choice for retry", svc.State())
	}
	if cart.cleared {
		t.Fatal("failed payment must not clear the cart")
	}

	t.Run("retry succeeds", func(t *testing.T) {
		pay.err = nil
		res, err := svc.Choose(ctx, domain.MethodStripe)
		if err != nil {
			t.Fatalf("retry Choose: %v", err)
		}
		if res.State != domain.StateCompleted || pay.calls != 2 {
			t.Fatalf("result %+v after %d calls", res, pay.calls)
		}
	})
}

func TestStripeFlowCancellationAborts(t *testing.T) {
	svc := NewService(&fakeCart{lines: twoLines()}, &fakePayment{}, discard())

	if _, err := svc.Begin(context.Background()); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Choose(ctx, domain.MethodStripe); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if svc.State() != domain.StateAborted {
		t.Fatalf("state = %s", svc.State())
	}
}

func TestContactFlowLeavesCartAlone(t *testing.T) {
	cart := &fakeCart{lines: twoLines()}
	svc := NewService(cart, &fakePayment{}, discard())
	ctx := context.Background()

	if _, err := svc.Begin(ctx); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	res, err := svc.Choose(ctx, domain.MethodContact)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if res.State != domain.StateCompleted || res.CartCleared {
		t.Fatalf("unexpected result: %+v", res)
	}
	if cart.cleared || len(cart.lines) != 2 {
		t.Fatal("contact flow must not touch the cart")
	}
}

func TestChooseUnknownMethod(t *testing.T) {
	svc := NewService(&fakeCart{lines: twoLines()}, &fakePayment{}, discard())

	if _, err := svc.Begin(context.Background()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := svc.Choose(context.Background(), "cheque"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestPaymentSucceedsButClearFails(t *testing.T) {
	cart := &fakeCart{lines: twoLines(), clearErr: errors.New("storage gone")}
	svc := NewService(cart, &fakePayment{}, discard())
	ctx := context.Background()

	if _, err := svc.Begin(ctx); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	res, err := svc.Choose(ctx, domain.MethodStripe)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if res.State != domain.StateCompleted {
		t.Fatalf("payment success must still complete, got %s", res.State)
	}
	if res.CartCleared {
		t.Fatal("result must report the clear did not happen")
	}
}
