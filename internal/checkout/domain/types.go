package domain

// State enumerates the checkout machine positions.
type State string

const (
	StateIdle           State = "idle"
	StateAwaitingChoice State = "awaiting_method_choice"
	StateStripeFlow     State = "stripe_flow"
	StateContactFlow    State = "contact_flow"
	StateCompleted      State = "completed"
	StateAborted        State = "aborted"
)

// Method is the path chosen at AwaitingMethodChoice.
type Method string

const (
	MethodStripe  Method = "stripe"
	MethodContact Method = "contact"
)

func (m Method) Valid() bool {
	return m == MethodStripe || m == MethodContact
}

// PaymentIntent is the payload handed to the payment collaborator.
// Amounts are minor currency units.
type PaymentIntent struct {
	ID          string
	AmountMinor int64
	Currency    string
	Description string
}

// Result reports where a Choose transition landed.
type Result struct {
	State       State
	Method      Method
	IntentID    string
	CartCleared bool
}
