package models

// Member roles within a trip.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Trip is a planned journey owned by one user. Members beyond the owner are
// tracked in TripMember rows.
type Trip struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Destination string
	StartDate   int64
	EndDate     int64
	IsPublic    bool
	CreatedAt   int64
	UpdatedAt   int64
}

// TripMember links a user to a trip. (trip_id, user_id) is unique.
type TripMember struct {
	ID       int64
	TripID   int64
	UserID   int64
	Role     string
	JoinedAt int64
}
