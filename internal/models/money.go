package models

import "math"

// Cents converts an amount expressed in currency units to fixed-point cents.
// Rounding is half-away-from-zero, so 10.005 becomes 1001.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Amount converts fixed-point cents back to currency units.
func Amount(cents int64) float64 {
	return float64(cents) / 100
}
