package booking

import (
	"context"

	"swiftdrive/internal/domain"
)

type CarSource interface {
	CarByID(id string) (*domain.Car, error)
}

type Ledger interface {
	Append(ctx context.Context, b domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
}
