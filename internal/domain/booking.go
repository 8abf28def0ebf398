package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingPending   BookingStatus = "Pending"
	BookingCancelled BookingStatus = "Cancelled"
)

// Booking is a confirmed reservation. Car fields are denormalized at
// creation time so the record stays stable even if the fleet changes.
type Booking struct {
	ID            string        `json:"id"`
	CarID         string        `json:"car_id"`
	CarName       string        `json:"car_name"`
	CarImage      string        `json:"car_image"`
	StartDate     string        `json:"start_date"`
	StartTime     string        `json:"start_time"`
	EndDate       string        `json:"end_date"`
	EndTime       string        `json:"end_time"`
	TotalPrice    int           `json:"total_price"`
	Status        BookingStatus `json:"status"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CreatedAt     time.Time     `json:"created_at"`
}
