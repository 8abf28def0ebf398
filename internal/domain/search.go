package domain

// SearchCriteria is the trip window the user is browsing for. Dates use
// "2006-01-02", times "15:04". Session-scoped, never persisted.
type SearchCriteria struct {
	Location   string `json:"location"`
	PickupDate string `json:"pickup_date"`
	PickupTime string `json:"pickup_time"`
	ReturnDate string `json:"return_date"`
	ReturnTime string `json:"return_time"`
}

// FilterCriteria narrows the catalog. An empty set on any dimension means
// no restriction on that dimension, and MaxPrice <= 0 means no price cap.
type FilterCriteria struct {
	Types     []CarType  `json:"types"`
	FuelTypes []FuelType `json:"fuel_types"`
	// MinPrice is accepted for parity with the client filter state but is
	// not applied to results.
	MinPrice float64  `json:"min_price"`
	MaxPrice float64  `json:"max_price"`
	Brands   []string `json:"brands"`
}
