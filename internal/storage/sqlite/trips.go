package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/nvelez/tripmate/internal/models"
)

// CreateTrip inserts a trip and an owner membership for the creating user
// in one transaction.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	now := time.Now().Unix()
	if trip.CreatedAt == 0 {
		trip.CreatedAt = now
	}
	if trip.UpdatedAt == 0 {
		trip.UpdatedAt = now
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO trips (user_id, title, description, destination, start_date, end_date, is_public, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trip.UserID, trip.Title, nullString(trip.Description), trip.Destination,
		trip.StartDate, trip.EndDate, trip.IsPublic, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	trip.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read trip id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO trip_members (trip_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)",
		trip.ID, trip.UserID, models.RoleOwner, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AddTripMember inserts a membership row. A duplicate (trip, user) pair
// violates the unique constraint and the error surfaces to the caller.
func (s *SQLiteStore) AddTripMember(ctx context.Context, member *models.TripMember) error {
	if member.JoinedAt == 0 {
		member.JoinedAt = time.Now().Unix()
	}
	if member.Role == "" {
		member.Role = models.RoleMember
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO trip_members (trip_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)",
		member.TripID, member.UserID, member.Role, member.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip member: %w", err)
	}

	member.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read trip member id: %w", err)
	}
	return nil
}

// CreateItinerary inserts a daily itinerary.
func (s *SQLiteStore) CreateItinerary(ctx context.Context, itinerary *models.DailyItinerary) error {
	now := time.Now().Unix()
	if itinerary.CreatedAt == 0 {
		itinerary.CreatedAt = now
	}
	if itinerary.UpdatedAt == 0 {
		itinerary.UpdatedAt = now
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_itineraries (trip_id, date, title, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		itinerary.TripID, itinerary.Date, itinerary.Title, nullString(itinerary.Notes),
		itinerary.CreatedAt, itinerary.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert itinerary: %w", err)
	}

	itinerary.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read itinerary id: %w", err)
	}
	return nil
}
