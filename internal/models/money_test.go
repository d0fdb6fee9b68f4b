package models

import "testing"

func TestMoneyRoundTrip(t *testing.T) {
	amounts := []float64{0, 0.01, 0.1, 1, 12.34, 50.25, 99.99, 100, 1234567.89}
	for _, amount := range amounts {
		if got := Amount(Cents(amount)); got != amount {
			t.Errorf("Amount(Cents(%v)) = %v, want %v", amount, got, amount)
		}
	}
}

func TestCentsRounding(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{10.005, 1001},
		{10.004, 1000},
		{0.999, 100},
		{-2.505, -251},
	}
	for _, tt := range tests {
		if got := Cents(tt.amount); got != tt.want {
			t.Errorf("Cents(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{CategoryAccommodation, CategoryFood, CategoryTransport, CategoryEntertainment, CategoryShopping, CategoryOther} {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	for _, c := range []string{"", "groceries", "FOOD"} {
		if ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = true, want false", c)
		}
	}
}
