// Package duration parses human-entered effort estimates.
package duration

import "time"

const (
	Minute = time.Minute
	Hour   = time.Hour
	Day    = 24 * time.Hour
	Week   = 7 * Day
	Month  = 30 * Day
	Year   = 365 * Day

	// Lifetime is what "lifetime" resolves to, whatever quantity precedes it.
	Lifetime = 40 * Year

	// DefaultQuantity is used when the quantity token cannot be read.
	DefaultQuantity = 20
	minUnit         = Minute

	// Default is the estimate for input that does not look like an estimate.
	Default = DefaultQuantity * minUnit

	UnitLifetime = "lifetime"
)

var unitsByPlural = map[string]time.Duration{
	"minutes": Minute,
	"hours":   Hour,
	"days":    Day,
	"weeks":   Week,
	"months":  Month,
	"years":   Year,
}

var abbreviations = map[string]string{
	"min":  "minutes",
	"mins": "minutes",
	"hr":   "hours",
	"hrs":  "hours",
}
