package models

// Expense categories.
const (
	CategoryAccommodation = "accommodation"
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryEntertainment = "entertainment"
	CategoryShopping      = "shopping"
	CategoryOther         = "other"
)

// ValidCategory reports whether c is a known expense category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryAccommodation, CategoryFood, CategoryTransport,
		CategoryEntertainment, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

// Expense is a group cost paid by one trip member. Expenses are immutable
// once created; only the settled flag on individual splits changes later.
type Expense struct {
	ID          int64
	TripID      int64
	PayerID     int64
	Title       string
	Description string
	AmountCents int64
	Currency    string // ISO 4217 code, 3 letters
	Category    string
	ExpenseDate int64
	CreatedAt   int64

	// Splits are persisted atomically with the expense.
	Splits []ExpenseSplit
}

// ExpenseSplit is one participant's share of an expense.
type ExpenseSplit struct {
	ID          int64
	ExpenseID   int64
	UserID      int64
	AmountCents int64
	IsSettled   bool
}

// Balance summarizes a user's standing within a trip, counting unsettled
// splits only. OwesCents covers the user's shares of expenses paid by
// others; OwedCents covers other members' shares of expenses the user paid.
type Balance struct {
	OwesCents int64
	OwedCents int64
	Currency  string
}
