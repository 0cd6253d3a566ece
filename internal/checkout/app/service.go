package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	cartdomain "github.com/ateliershop/storefront/internal/cart/domain"
	"github.com/ateliershop/storefront/internal/checkout/domain"
	"github.com/ateliershop/storefront/internal/pricing"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid checkout transition")
	ErrPaymentFailed     = errors.New("payment failed")
)

const currency = "GBP"

// Service drives one checkout attempt per browsing session:
// Idle → AwaitingMethodChoice → {StripeFlow | ContactFlow} →
// Completed | Aborted. A payment failure returns to the choice state
// so the user can retry.
type Service struct {
	cart    Cart
	payment Payment
	log     *slog.Logger

	mu      sync.Mutex
	state   domain.State
	lines   []cartdomain.Line
	summary pricing.Summary
}

func NewService(cart Cart, payment Payment, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		cart:    cart,
		payment: payment,
		log:     log,
		state:   domain.StateIdle,
	}
}

func (s *Service) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin starts (or restarts) a checkout. An empty cart aborts
// immediately; otherwise the machine waits for a method choice and the
// frozen summary is returned for display.
func (s *Service) Begin(ctx context.Context) (pricing.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.Lines(ctx)
	if len(lines) == 0 {
		s.state = domain.StateAborted
		return pricing.Summary{}, ErrEmptyCart
	}

	s.lines = lines
	s.summary = pricing.Compute(lines)
	s.state = domain.StateAwaitingChoice
	return s.summary, nil
}

// Choose takes the selected path. Only legal from
// AwaitingMethodChoice.
func (s *Service) Choose(ctx context.Context, method domain.Method) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateAwaitingChoice {
		return domain.Result{State: s.state}, fmt.Errorf("%w: state %s", ErrInvalidTransition, s.state)
	}

	switch method {
	case domain.MethodStripe:
		return s.stripeFlow(ctx)
	case domain.MethodContact:
		// Consultative path: hand off to the contact form, cart
		// untouched. There is no async step, so ContactFlow completes
		// in the same transition.
		s.state = domain.StateCompleted
		return domain.Result{State: s.state, Method: method}, nil
	default:
		return domain.Result{State: s.state}, fmt.Errorf("%w: unknown method %q", ErrInvalidTransition, method)
	}
}

func (s *Service) stripeFlow(ctx context.Context) (domain.Result, error) {
	s.state = domain.StateStripeFlow
	intent := s.buildIntent()

	if err := s.payment.Charge(ctx, intent); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// User navigated away mid-flow.
			s.state = domain.StateAborted
			return domain.Result{State: s.state, Method: domain.MethodStripe}, err
		}
		s.state = domain.StateAwaitingChoice
		s.log.Warn("payment declined", slog.String("intent", intent.ID), slog.Any("err", err))
		return domain.Result{State: s.state, Method: domain.MethodStripe},
			fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	// Confirmed payment clears the cart. The original storefront left
	// the cart intact here; see DESIGN.md.
	cleared := true
	if err := s.cart.Clear(ctx); err != nil {
		cleared = false
		s.log.Warn("cart clear after payment failed", slog.Any("err", err))
	}

	s.state = domain.StateCompleted
	s.log.Info("payment completed",
		slog.String("intent", intent.ID),
		slog.Int64("amount_minor", intent.AmountMinor),
	)
	return domain.Result{
		State:       s.state,
		Method:      domain.MethodStripe,
		IntentID:    intent.ID,
		CartCleared: cleared,
	}, nil
}

func (s *Service) buildIntent() domain.PaymentIntent {
	parts := make([]string, 0, len(s.lines))
	for _, l := range s.lines {
		parts = append(parts, fmt.Sprintf("%s (x%d)", l.Name, l.Quantity))
	}

	return domain.PaymentIntent{
		ID:          uuid.NewString(),
		AmountMinor: s.summary.TotalMinorUnits(),
		Currency:    currency,
		Description: strings.Join(parts, ", "),
	}
}
