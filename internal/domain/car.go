package domain

import "errors"

type CarType string

const (
	CarSedan       CarType = "Sedan"
	CarSUV         CarType = "SUV"
	CarLuxury      CarType = "Luxury"
	CarCompact     CarType = "Compact"
	CarConvertible CarType = "Convertible"
	CarTruck       CarType = "Truck"
)

type FuelType string

const (
	FuelGasoline FuelType = "Gasoline"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
	FuelDiesel   FuelType = "Diesel"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

type Condition string

const (
	ConditionMint      Condition = "Mint"
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
)

var (
	ErrInvalidCarType  = errors.New("invalid car type")
	ErrInvalidFuelType = errors.New("invalid fuel type")
)

func ParseCarType(s string) (CarType, error) {
	switch CarType(s) {
	case CarSedan, CarSUV, CarLuxury, CarCompact, CarConvertible, CarTruck:
		return CarType(s), nil
	}
	return "", ErrInvalidCarType
}

func ParseFuelType(s string) (FuelType, error) {
	switch FuelType(s) {
	case FuelGasoline, FuelElectric, FuelHybrid, FuelDiesel:
		return FuelType(s), nil
	}
	return "", ErrInvalidFuelType
}

// Gallery holds the fixed four-slot photo set every car ships with.
type Gallery struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Interior string `json:"interior"`
	Exterior string `json:"exterior"`
}

type CarSpecs struct {
	Engine       string `json:"engine"`
	Acceleration string `json:"acceleration"`
	TopSpeed     string `json:"top_speed"`
}

// Car is an immutable fleet record, seeded once at startup.
type Car struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Brand        string       `json:"brand"`
	Type         CarType      `json:"type"`
	PricePerDay  float64      `json:"price_per_day"`
	Image        string       `json:"image"`
	Gallery      Gallery      `json:"gallery"`
	FuelType     FuelType     `json:"fuel_type"`
	Transmission Transmission `json:"transmission"`
	Seats        int          `json:"seats"`
	Rating       float64      `json:"rating"`
	Reviews      int          `json:"reviews"`
	Description  string       `json:"description"`
	Features     []string     `json:"features"`
	Condition    Condition    `json:"condition"`
	Specs        CarSpecs     `json:"specs"`
}
