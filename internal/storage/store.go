// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/nvelez/tripmate/internal/models"
)

// ErrNotFound marks a missing row. Implementations wrap it so callers can
// test with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrNegativeIndex is returned by ReorderActivity for a target position
// below zero. Positions past the end of the itinerary are clamped instead.
var ErrNegativeIndex = errors.New("order index can't be negative")

// Store defines the persistence operations the services depend on. The
// abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user. The ID and timestamps are populated
	// by the store.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil without error when no user matches.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByUsername returns nil without error when no user matches.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// CreateTrip persists a trip and, in the same transaction, an owner
	// membership row for the creating user.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// AddTripMember persists a membership row. Duplicate (trip, user)
	// pairs violate a uniqueness constraint and surface verbatim.
	AddTripMember(ctx context.Context, member *models.TripMember) error

	// CreateItinerary persists a daily itinerary.
	CreateItinerary(ctx context.Context, itinerary *models.DailyItinerary) error

	// CreateActivity persists an activity at the caller-supplied order index.
	CreateActivity(ctx context.Context, activity *models.Activity) error

	// ListItineraryActivities returns an itinerary's activities ordered by
	// order_index ascending.
	ListItineraryActivities(ctx context.Context, itineraryID int64) ([]*models.Activity, error)

	// ReorderActivity moves an activity to newIndex within its itinerary and
	// shifts its siblings so indices stay dense, all in one transaction.
	// Returns ErrNotFound if the activity does not exist and
	// ErrNegativeIndex for newIndex < 0; newIndex past the end is clamped.
	ReorderActivity(ctx context.Context, activityID int64, newIndex int) error

	// CreateExpense persists an expense together with its splits in one
	// transaction; either everything persists or nothing does.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListTripExpenses returns a trip's expenses, each with its splits.
	ListTripExpenses(ctx context.Context, tripID int64) ([]*models.Expense, error)

	// SettleSplit marks the split for (expenseID, userID) settled. The
	// returned flag is false only when no matching split row exists;
	// settling an already-settled split succeeds.
	SettleSplit(ctx context.Context, expenseID, userID int64) (bool, error)

	// TripBalance computes a user's owes/owed totals over unsettled splits
	// in the trip, plus the trip's dominant currency ("USD" when the trip
	// has no expenses).
	TripBalance(ctx context.Context, tripID, userID int64) (*models.Balance, error)

	// Close releases any resources held by the store.
	Close() error
}
