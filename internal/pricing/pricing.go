// Package pricing computes rental duration and price quotes. All functions
// are pure: the same inputs always produce the same quote.
package pricing

import (
	"math"
	"time"
)

// minDays is the half-day minimum charge. It applies to every window,
// including zero and negative ones; an inverted window is not an error here.
const minDays = 0.5

// Quote is the derived duration and price for one rental window.
// It is never persisted.
type Quote struct {
	Days  float64 `json:"days"`
	Hours float64 `json:"hours"`
	Total int     `json:"total"`
}

// Compute derives a quote from the pickup/return timestamps and a per-day
// rate. Days are rounded to two decimals and floored at the half-day
// minimum; the total is rounded to a whole amount. Rounding is
// half-away-from-zero (math.Round).
func Compute(pickup, ret time.Time, ratePerDay float64) Quote {
	rawHours := ret.Sub(pickup).Hours()
	if rawHours < 0 {
		rawHours = 0
	}

	days := math.Round(rawHours/24*100) / 100
	if days < minDays {
		days = minDays
	}

	return Quote{
		Days:  days,
		Hours: math.Round(rawHours*10) / 10,
		Total: int(math.Round(days * ratePerDay)),
	}
}

// Window parses a "2006-01-02" date and a "15:04" clock into one timestamp.
func Window(date, clock string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+clock)
}
