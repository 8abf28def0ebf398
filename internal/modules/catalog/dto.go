package catalog

import (
	"strconv"
	"strings"

	"swiftdrive/internal/domain"
)

// criteriaFromQuery builds filter criteria from the listing query string.
// Set-valued dimensions arrive comma-separated, e.g. ?types=SUV,Luxury.
func criteriaFromQuery(types, fuelTypes, brands, minPrice, maxPrice string) (domain.FilterCriteria, error) {
	var criteria domain.FilterCriteria

	for _, raw := range splitList(types) {
		t, err := domain.ParseCarType(raw)
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		criteria.Types = append(criteria.Types, t)
	}

	for _, raw := range splitList(fuelTypes) {
		ft, err := domain.ParseFuelType(raw)
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		criteria.FuelTypes = append(criteria.FuelTypes, ft)
	}

	criteria.Brands = splitList(brands)

	if minPrice != "" {
		v, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		criteria.MinPrice = v
	}
	if maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		criteria.MaxPrice = v
	}

	return criteria, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
