package models

// Transportation methods for reaching an activity.
const (
	TransportWalking         = "walking"
	TransportDriving         = "driving"
	TransportPublicTransport = "public_transport"
	TransportTaxi            = "taxi"
	TransportOther           = "other"
)

// Activity is one entry in a daily itinerary. OrderIndex is the zero-based
// position within the itinerary; the store keeps indices dense and
// contiguous (0..N-1) across reorders.
type Activity struct {
	ID                int64
	DailyItineraryID  int64
	Title             string
	Description       string
	LocationName      string
	Latitude          *float64
	Longitude         *float64
	StartTime         string // HH:MM, empty if unset
	EndTime           string // HH:MM, empty if unset
	EstimatedDuration *int64 // minutes
	Transportation    string // one of the Transport constants, empty if unset
	CostEstimateCents *int64
	OrderIndex        int
	CreatedAt         int64
	UpdatedAt         int64
}
