package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"swiftdrive/internal/domain"
)

type stubCars struct {
	car domain.Car
}

func (s stubCars) CarByID(id string) (*domain.Car, error) {
	if id != s.car.ID {
		return nil, errors.New("no such car")
	}
	c := s.car
	return &c, nil
}

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) Append(ctx context.Context, b domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockLedger) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func testCar() domain.Car {
	return domain.Car{
		ID:          "1",
		Name:        "Model S",
		Brand:       "Tesla",
		PricePerDay: 100,
		Image:       "https://example.com/model-s.jpg",
	}
}

func oneDayCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		PickupDate: "2026-05-01",
		PickupTime: "09:00",
		ReturnDate: "2026-05-02",
		ReturnTime: "09:00",
	}
}

func newTestService(ledger Ledger) *Service {
	return NewService(stubCars{car: testCar()}, ledger)
}

func TestStartAttemptAppliesDefaultTimes(t *testing.T) {
	s := newTestService(new(mockLedger))

	a, err := s.StartAttempt("1", domain.SearchCriteria{
		PickupDate: "2026-05-01",
		ReturnDate: "2026-05-02",
	})
	require.NoError(t, err)

	assert.Equal(t, "09:00", a.Criteria.PickupTime)
	assert.Equal(t, "17:00", a.Criteria.ReturnTime)
	assert.Equal(t, StateReviewing, a.State)
	// 32 hours at $100/day rounds to 1.33 days, $133.
	assert.Equal(t, 133, a.Quote.Total)
}

func TestStartAttemptUnknownCar(t *testing.T) {
	s := newTestService(new(mockLedger))

	_, err := s.StartAttempt("99", oneDayCriteria())
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestStartAttemptBadWindow(t *testing.T) {
	s := newTestService(new(mockLedger))

	_, err := s.StartAttempt("1", domain.SearchCriteria{
		PickupDate: "yesterday",
		ReturnDate: "2026-05-02",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestConfirmHappyPath(t *testing.T) {
	ledger := new(mockLedger)
	ledger.On("Append", mock.Anything, mock.AnythingOfType("domain.Booking")).Return(nil)
	s := newTestService(ledger)

	a, err := s.StartAttempt("1", oneDayCriteria())
	require.NoError(t, err)
	require.Equal(t, 100, a.Quote.Total)

	_, err = s.Finalize(a.ID, "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)

	b, err := s.Confirm(context.Background(), a.ID, "100")
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Tesla Model S", b.CarName)
	assert.Equal(t, 100, b.TotalPrice)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, "Ada Lovelace", b.CustomerName)

	got, err := s.GetAttempt(a.ID)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, got.State)

	ledger.AssertNumberOfCalls(t, "Append", 1)
}

func TestConfirmTrimsVerificationInput(t *testing.T) {
	ledger := new(mockLedger)
	ledger.On("Append", mock.Anything, mock.Anything).Return(nil)
	s := newTestService(ledger)

	a, _ := s.StartAttempt("1", oneDayCriteria())
	_, err := s.Finalize(a.ID, "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)

	_, err = s.Confirm(context.Background(), a.ID, "  100  ")
	assert.NoError(t, err)
}

func TestConfirmRejectsDecimalRendering(t *testing.T) {
	ledger := new(mockLedger)
	s := newTestService(ledger)

	a, _ := s.StartAttempt("1", oneDayCriteria())
	_, err := s.Finalize(a.ID, "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)

	_, err = s.Confirm(context.Background(), a.ID, "100.0")
	assert.ErrorIs(t, err, ErrVerificationMismatch)

	got, _ := s.GetAttempt(a.ID)
	assert.Equal(t, StateFinalizing, got.State)
	ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestConfirmRequiresFinalizingState(t *testing.T) {
	ledger := new(mockLedger)
	s := newTestService(ledger)

	a, _ := s.StartAttempt("1", oneDayCriteria())

	_, err := s.Confirm(context.Background(), a.ID, "100")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestConfirmRequiresCustomerDetails(t *testing.T) {
	ledger := new(mockLedger)
	s := newTestService(ledger)

	a, _ := s.StartAttempt("1", oneDayCriteria())
	_, err := s.Finalize(a.ID, "   ", "")
	require.NoError(t, err)

	_, err = s.Confirm(context.Background(), a.ID, "100")
	assert.ErrorIs(t, err, ErrIncompleteDetails)
	ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestConfirmSurfacesLedgerFailure(t *testing.T) {
	ledger := new(mockLedger)
	ledger.On("Append", mock.Anything, mock.Anything).Return(errors.New("kv write failed"))
	s := newTestService(ledger)

	a, _ := s.StartAttempt("1", oneDayCriteria())
	_, _ = s.Finalize(a.ID, "Ada Lovelace", "ada@example.com")

	_, err := s.Confirm(context.Background(), a.ID, "100")
	require.Error(t, err)

	got, _ := s.GetAttempt(a.ID)
	assert.Equal(t, StateFinalizing, got.State, "a failed write must not confirm the attempt")
}

func TestUpdateTimesRepricesAndClearsVerification(t *testing.T) {
	s := newTestService(new(mockLedger))

	a, _ := s.StartAttempt("1", oneDayCriteria())
	_, _ = s.Finalize(a.ID, "Ada Lovelace", "ada@example.com")

	// A failed confirm leaves the typed input on the attempt.
	_, err := s.Confirm(context.Background(), a.ID, "999")
	require.ErrorIs(t, err, ErrVerificationMismatch)
	got, _ := s.GetAttempt(a.ID)
	assert.Equal(t, "999", got.Verification)

	updated, err := s.UpdateTimes(a.ID, domain.SearchCriteria{
		PickupDate: "2026-05-01",
		PickupTime: "09:00",
		ReturnDate: "2026-05-03",
		ReturnTime: "09:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 200, updated.Quote.Total)
	assert.Empty(t, updated.Verification)
	assert.Equal(t, StateFinalizing, updated.State)
}

func TestUpdateTimesRejectedOnTerminalAttempt(t *testing.T) {
	s := newTestService(new(mockLedger))

	a, _ := s.StartAttempt("1", oneDayCriteria())
	require.NoError(t, s.Abandon(a.ID))

	_, err := s.UpdateTimes(a.ID, oneDayCriteria())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAbandonFromFinalizing(t *testing.T) {
	s := newTestService(new(mockLedger))

	a, _ := s.StartAttempt("1", oneDayCriteria())
	_, _ = s.Finalize(a.ID, "Ada Lovelace", "ada@example.com")

	require.NoError(t, s.Abandon(a.ID))

	_, err := s.Finalize(a.ID, "Ada Lovelace", "ada@example.com")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestGetAttemptNotFound(t *testing.T) {
	s := newTestService(new(mockLedger))

	_, err := s.GetAttempt("missing")
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestListBookingsDelegatesToLedger(t *testing.T) {
	ledger := new(mockLedger)
	ledger.On("List", mock.Anything).Return([]domain.Booking{{ID: "b1"}}, nil)
	s := newTestService(ledger)

	got, err := s.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)
}

func TestQuoteForHalfDayFloor(t *testing.T) {
	s := newTestService(new(mockLedger))

	quote, err := s.QuoteFor("1", domain.SearchCriteria{
		PickupDate: "2026-05-01",
		PickupTime: "09:00",
		ReturnDate: "2026-05-01",
		ReturnTime: "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.5, quote.Days)
	assert.Equal(t, 50, quote.Total)
}
