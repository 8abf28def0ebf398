package booking

import (
	"time"

	"swiftdrive/internal/domain"
	"swiftdrive/internal/pricing"
)

// AttemptState tracks a booking attempt through the checkout flow.
type AttemptState string

const (
	StateReviewing  AttemptState = "reviewing"
	StateFinalizing AttemptState = "finalizing"
	StateConfirmed  AttemptState = "confirmed"
	StateAbandoned  AttemptState = "abandoned"
)

// allowedTransitions is the directed graph of legal attempt moves.
// Confirmed and abandoned are terminal.
var allowedTransitions = map[AttemptState][]AttemptState{
	StateReviewing:  {StateFinalizing, StateAbandoned},
	StateFinalizing: {StateConfirmed, StateAbandoned},
	StateConfirmed:  {},
	StateAbandoned:  {},
}

func canTransition(from, to AttemptState) bool {
	if from == to {
		return true
	}
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func isTerminal(s AttemptState) bool {
	return len(allowedTransitions[s]) == 0
}

// Attempt is an in-flight checkout for one car. It lives in memory only;
// a booking reaches the ledger solely through a successful Confirm.
type Attempt struct {
	ID            string                `json:"id"`
	Car           domain.Car            `json:"car"`
	Criteria      domain.SearchCriteria `json:"criteria"`
	Quote         pricing.Quote         `json:"quote"`
	CustomerName  string                `json:"customer_name,omitempty"`
	CustomerEmail string                `json:"customer_email,omitempty"`
	Verification  string                `json:"verification,omitempty"`
	State         AttemptState          `json:"state"`
	CreatedAt     time.Time             `json:"created_at"`
}

func (a *Attempt) transition(to AttemptState) error {
	if !canTransition(a.State, to) {
		return ErrInvalidTransition
	}
	a.State = to
	return nil
}
