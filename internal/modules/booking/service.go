package booking

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"swiftdrive/internal/domain"
	"swiftdrive/internal/pricing"
)

const (
	defaultPickupTime = "09:00"
	defaultReturnTime = "17:00"
)

type Service struct {
	cars   CarSource
	ledger Ledger

	mu       sync.Mutex
	attempts map[string]*Attempt
}

func NewService(cars CarSource, ledger Ledger) *Service {
	return &Service{
		cars:     cars,
		ledger:   ledger,
		attempts: make(map[string]*Attempt),
	}
}

// StartAttempt opens a reviewing-state attempt for the given car and
// rental window. Missing clock values fall back to the standard pickup
// and return times.
func (s *Service) StartAttempt(carID string, criteria domain.SearchCriteria) (*Attempt, error) {
	car, err := s.cars.CarByID(carID)
	if err != nil {
		return nil, ErrCarNotFound
	}

	applyTimeDefaults(&criteria)
	quote, err := quoteFor(criteria, car.PricePerDay)
	if err != nil {
		return nil, ErrValidation
	}

	a := &Attempt{
		ID:        uuid.NewString(),
		Car:       *car,
		Criteria:  criteria,
		Quote:     quote,
		State:     StateReviewing,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.attempts[a.ID] = a
	s.mu.Unlock()

	return a, nil
}

func (s *Service) GetAttempt(id string) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[id]
	if !ok {
		return nil, ErrAttemptNotFound
	}
	out := *a
	return &out, nil
}

// Finalize records the customer details and moves the attempt to the
// finalizing state. Calling it again overwrites the details.
func (s *Service) Finalize(id, name, email string) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[id]
	if !ok {
		return nil, ErrAttemptNotFound
	}
	if err := a.transition(StateFinalizing); err != nil {
		return nil, err
	}
	a.CustomerName = strings.TrimSpace(name)
	a.CustomerEmail = strings.TrimSpace(email)

	out := *a
	return &out, nil
}

// UpdateTimes replaces the rental window, reprices the attempt and
// clears any pending verification input so a stale total cannot slip
// through Confirm.
func (s *Service) UpdateTimes(id string, criteria domain.SearchCriteria) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[id]
	if !ok {
		return nil, ErrAttemptNotFound
	}
	if isTerminal(a.State) {
		return nil, ErrInvalidTransition
	}

	applyTimeDefaults(&criteria)
	quote, err := quoteFor(criteria, a.Car.PricePerDay)
	if err != nil {
		return nil, ErrValidation
	}

	a.Criteria = criteria
	a.Quote = quote
	a.Verification = ""

	out := *a
	return &out, nil
}

// Confirm checks the payment verification gate and, on success, writes
// the booking to the ledger and closes the attempt. The typed input has
// to reproduce the integer total exactly, so "150.0" does not pass for
// a $150 quote.
func (s *Service) Confirm(ctx context.Context, id, verification string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[id]
	if !ok {
		return nil, ErrAttemptNotFound
	}
	if !canTransition(a.State, StateConfirmed) || a.State != StateFinalizing {
		return nil, ErrInvalidTransition
	}
	if a.CustomerName == "" || a.CustomerEmail == "" {
		return nil, ErrIncompleteDetails
	}

	a.Verification = verification
	if strings.TrimSpace(verification) != strconv.Itoa(a.Quote.Total) {
		return nil, ErrVerificationMismatch
	}

	b := domain.Booking{
		ID:            uuid.NewString(),
		CarID:         a.Car.ID,
		CarName:       a.Car.Brand + " " + a.Car.Name,
		CarImage:      a.Car.Image,
		StartDate:     a.Criteria.PickupDate,
		StartTime:     a.Criteria.PickupTime,
		EndDate:       a.Criteria.ReturnDate,
		EndTime:       a.Criteria.ReturnTime,
		TotalPrice:    a.Quote.Total,
		Status:        domain.BookingConfirmed,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CreatedAt:     time.Now(),
	}

	// The attempt stays in finalizing if the ledger write fails, so the
	// customer can retry without losing their details.
	if err := s.ledger.Append(ctx, b); err != nil {
		return nil, err
	}
	_ = a.transition(StateConfirmed)

	return &b, nil
}

// Abandon cancels an attempt from any non-terminal state.
func (s *Service) Abandon(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[id]
	if !ok {
		return ErrAttemptNotFound
	}
	return a.transition(StateAbandoned)
}

// ListBookings returns the confirmed bookings, newest first.
func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.ledger.List(ctx)
}

// QuoteFor prices a rental window for the given car without opening an
// attempt. It backs the public quote endpoint.
func (s *Service) QuoteFor(carID string, criteria domain.SearchCriteria) (pricing.Quote, error) {
	car, err := s.cars.CarByID(carID)
	if err != nil {
		return pricing.Quote{}, ErrCarNotFound
	}
	applyTimeDefaults(&criteria)
	quote, err := quoteFor(criteria, car.PricePerDay)
	if err != nil {
		return pricing.Quote{}, ErrValidation
	}
	return quote, nil
}

func applyTimeDefaults(c *domain.SearchCriteria) {
	if c.PickupTime == "" {
		c.PickupTime = defaultPickupTime
	}
	if c.ReturnTime == "" {
		c.ReturnTime = defaultReturnTime
	}
}

func quoteFor(c domain.SearchCriteria, rate float64) (pricing.Quote, error) {
	pickup, err := pricing.Window(c.PickupDate, c.PickupTime)
	if err != nil {
		return pricing.Quote{}, err
	}
	ret, err := pricing.Window(c.ReturnDate, c.ReturnTime)
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.Compute(pickup, ret, rate), nil
}
