package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nvelez/tripmate/internal/models"
	"github.com/nvelez/tripmate/internal/storage"
)

// CreateActivity inserts an activity at the caller-supplied order index.
func (s *SQLiteStore) CreateActivity(ctx context.Context, activity *models.Activity) error {
	now := time.Now().Unix()
	if activity.CreatedAt == 0 {
		activity.CreatedAt = now
	}
	if activity.UpdatedAt == 0 {
		activity.UpdatedAt = now
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO activities (daily_itinerary_id, title, description, location_name,
		    latitude, longitude, start_time, end_time, estimated_duration,
		    transportation_method, cost_estimate_cents, order_index, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		activity.DailyItineraryID, activity.Title, nullString(activity.Description),
		activity.LocationName, activity.Latitude, activity.Longitude,
		nullString(activity.StartTime), nullString(activity.EndTime),
		activity.EstimatedDuration, nullString(activity.Transportation),
		activity.CostEstimateCents, activity.OrderIndex,
		activity.CreatedAt, activity.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	activity.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read activity id: %w", err)
	}
	return nil
}

// ListItineraryActivities returns the itinerary's activities ordered by
// order_index ascending.
func (s *SQLiteStore) ListItineraryActivities(ctx context.Context, itineraryID int64) ([]*models.Activity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, daily_itinerary_id, title, description, location_name,
		    latitude, longitude, start_time, end_time, estimated_duration,
		    transportation_method, cost_estimate_cents, order_index, created_at, updated_at
		 FROM activities WHERE daily_itinerary_id = ? ORDER BY order_index ASC`,
		itineraryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		activity := &models.Activity{}
		var description, startTime, endTime, transportation sql.NullString
		if err := rows.Scan(
			&activity.ID, &activity.DailyItineraryID, &activity.Title, &description,
			&activity.LocationName, &activity.Latitude, &activity.Longitude,
			&startTime, &endTime, &activity.EstimatedDuration,
			&transportation, &activity.CostEstimateCents, &activity.OrderIndex,
			&activity.CreatedAt, &activity.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activity.Description = description.String
		activity.StartTime = startTime.String
		activity.EndTime = endTime.String
		activity.Transportation = transportation.String
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}

	return activities, nil
}

// ReorderActivity moves an activity to newIndex within its itinerary,
// shifting every sibling between the old and new position by one so the
// order_index column stays dense (0..N-1). The whole move runs in a single
// transaction; interleaved reorders cannot observe a half-shifted itinerary.
func (s *SQLiteStore) ReorderActivity(ctx context.Context, activityID int64, newIndex int) error {
	if newIndex < 0 {
		return storage.ErrNegativeIndex
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var itineraryID int64
	var current int
	err = tx.QueryRowContext(ctx,
		"SELECT daily_itinerary_id, order_index FROM activities WHERE id = ?",
		activityID,
	).Scan(&itineraryID, &current)
	if err == sql.ErrNoRows {
		return fmt.Errorf("activity %d: %w", activityID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to get activity: %w", err)
	}

	// Clamp targets past the end of the list so the ordering can't grow gaps.
	var count int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM activities WHERE daily_itinerary_id = ?", itineraryID,
	).Scan(&count); err != nil {
		return fmt.Errorf("failed to count activities: %w", err)
	}
	if newIndex > count-1 {
		newIndex = count - 1
	}

	if newIndex == current {
		return tx.Commit()
	}

	now := time.Now().Unix()
	if current < newIndex {
		// Moving down: siblings in (current, newIndex] shift up by one.
		_, err = tx.ExecContext(ctx,
			`UPDATE activities SET order_index = order_index - 1, updated_at = ?
			 WHERE daily_itinerary_id = ? AND order_index > ? AND order_index <= ?`,
			now, itineraryID, current, newIndex,
		)
	} else {
		// Moving up: siblings in [newIndex, current) shift down by one.
		_, err = tx.ExecContext(ctx,
			`UPDATE activities SET order_index = order_index + 1, updated_at = ?
			 WHERE daily_itinerary_id = ? AND order_index >= ? AND order_index < ?`,
			now, itineraryID, newIndex, current,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to shift activities: %w", err)
	}

	// The target lands on its new position last.
	_, err = tx.ExecContext(ctx,
		"UPDATE activities SET order_index = ?, updated_at = ? WHERE id = ?",
		newIndex, now, activityID,
	)
	if err != nil {
		return fmt.Errorf("failed to move activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
