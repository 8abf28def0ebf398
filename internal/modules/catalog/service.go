package catalog

import (
	"errors"

	"swiftdrive/internal/domain"
)

var ErrCarNotFound = errors.New("car not found")

// Service serves the read-only fleet catalog.
type Service struct {
	cars []domain.Car
}

func NewService(cars []domain.Car) *Service {
	return &Service{cars: cars}
}

// All returns the full catalog in seed order.
func (s *Service) All() []domain.Car {
	return s.cars
}

// List applies the filter criteria to the catalog.
func (s *Service) List(criteria domain.FilterCriteria) []domain.Car {
	return Filter(s.cars, criteria)
}

func (s *Service) CarByID(id string) (*domain.Car, error) {
	for i := range s.cars {
		if s.cars[i].ID == id {
			return &s.cars[i], nil
		}
	}
	return nil, ErrCarNotFound
}

// Brands returns the distinct brand list in first-seen catalog order.
func (s *Service) Brands() []string {
	seen := make(map[string]bool, len(s.cars))
	brands := make([]string, 0, len(s.cars))
	for _, c := range s.cars {
		if seen[c.Brand] {
			continue
		}
		seen[c.Brand] = true
		brands = append(brands, c.Brand)
	}
	return brands
}

// Filter returns the ordered subsequence of cars matching every criteria
// dimension. An empty selection on a dimension matches everything, and a
// non-positive MaxPrice disables the price cap. The result is never nil,
// so an empty match stays distinguishable from an unfiltered catalog.
func Filter(cars []domain.Car, f domain.FilterCriteria) []domain.Car {
	out := make([]domain.Car, 0, len(cars))
	for _, car := range cars {
		if !matchCarType(car.Type, f.Types) {
			continue
		}
		if !matchFuelType(car.FuelType, f.FuelTypes) {
			continue
		}
		if f.MaxPrice > 0 && car.PricePerDay > f.MaxPrice {
			continue
		}
		if !matchBrand(car.Brand, f.Brands) {
			continue
		}
		out = append(out, car)
	}
	return out
}

func matchCarType(v domain.CarType, selected []domain.CarType) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == v {
			return true
		}
	}
	return false
}

func matchFuelType(v domain.FuelType, selected []domain.FuelType) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == v {
			return true
		}
	}
	return false
}

func matchBrand(v string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == v {
			return true
		}
	}
	return false
}
