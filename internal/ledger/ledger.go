// Package ledger builds and validates expenses before they reach storage.
// It is pure: no I/O, no clock beyond the caller-supplied dates.
package ledger

import (
	"errors"

	"github.com/nvelez/tripmate/internal/models"
)

var (
	ErrEmptyTitle      = errors.New("title can't be empty")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
	ErrInvalidCategory = errors.New("unknown expense category")
	ErrInvalidShare    = errors.New("split amount must be positive")
)

// Share names one participant's portion of an expense.
type Share struct {
	UserID int64
	Amount float64
}

// NewExpense validates the input and assembles an Expense with its splits
// attached, amounts converted to cents. The split list may be empty, and the
// shares are deliberately not required to sum to the expense amount.
func NewExpense(tripID, payerID int64, title, description string, amount float64, currency, category string, expenseDate int64, splitWith []Share) (*models.Expense, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}
	if !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	expense := &models.Expense{
		TripID:      tripID,
		PayerID:     payerID,
		Title:       title,
		Description: description,
		AmountCents: models.Cents(amount),
		Currency:    currency,
		Category:    category,
		ExpenseDate: expenseDate,
	}

	for _, share := range splitWith {
		if share.Amount <= 0 {
			return nil, ErrInvalidShare
		}
		expense.Splits = append(expense.Splits, models.ExpenseSplit{
			UserID:      share.UserID,
			AmountCents: models.Cents(share.Amount),
		})
	}

	return expense, nil
}
