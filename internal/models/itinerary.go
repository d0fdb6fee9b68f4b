package models

// DailyItinerary groups the activities planned for one day of a trip.
type DailyItinerary struct {
	ID        int64
	TripID    int64
	Date      int64
	Title     string
	Notes     string
	CreatedAt int64
	UpdatedAt int64
}
