// Package api defines the wire types for the Tripmate RPC surface.
//
// Procedures are Connect unary calls exchanging JSON bodies; field names use
// snake_case. Timestamps travel as Unix seconds and monetary amounts as
// floating-point currency units (the server stores them as fixed-point
// cents).
package api

// Procedure paths, one per RPC.
const (
	UserServiceCreateUserProcedure = "/tripmate.v1.UserService/CreateUser"
	UserServiceLoginUserProcedure  = "/tripmate.v1.UserService/LoginUser"

	PlannerServiceCreateActivityProcedure         = "/tripmate.v1.PlannerService/CreateActivity"
	PlannerServiceGetItineraryActivitiesProcedure = "/tripmate.v1.PlannerService/GetItineraryActivities"
	PlannerServiceUpdateActivityOrderProcedure    = "/tripmate.v1.PlannerService/UpdateActivityOrder"

	ExpenseServiceCreateExpenseProcedure         = "/tripmate.v1.ExpenseService/CreateExpense"
	ExpenseServiceGetTripExpensesProcedure       = "/tripmate.v1.ExpenseService/GetTripExpenses"
	ExpenseServiceGetUserExpenseSummaryProcedure = "/tripmate.v1.ExpenseService/GetUserExpenseSummary"
	ExpenseServiceSettleExpenseProcedure         = "/tripmate.v1.ExpenseService/SettleExpense"
)

// User is an account without its password hash.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type CreateUserRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type CreateUserResponse struct {
	User User `json:"user"`
}

type LoginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Activity mirrors one itinerary entry.
type Activity struct {
	ID                int64    `json:"id"`
	DailyItineraryID  int64    `json:"daily_itinerary_id"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	LocationName      string   `json:"location_name"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	StartTime         string   `json:"start_time,omitempty"`
	EndTime           string   `json:"end_time,omitempty"`
	EstimatedDuration *int64   `json:"estimated_duration,omitempty"`
	Transportation    string   `json:"transportation_method,omitempty"`
	CostEstimate      *float64 `json:"cost_estimate,omitempty"`
	OrderIndex        int      `json:"order_index"`
	CreatedAt         int64    `json:"created_at"`
	UpdatedAt         int64    `json:"updated_at"`
}

type CreateActivityRequest struct {
	DailyItineraryID  int64    `json:"daily_itinerary_id"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	LocationName      string   `json:"location_name"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	StartTime         string   `json:"start_time,omitempty"`
	EndTime           string   `json:"end_time,omitempty"`
	EstimatedDuration *int64   `json:"estimated_duration,omitempty"`
	Transportation    string   `json:"transportation_method,omitempty"`
	CostEstimate      *float64 `json:"cost_estimate,omitempty"`
	OrderIndex        int      `json:"order_index"`
}

type CreateActivityResponse struct {
	Activity Activity `json:"activity"`
}

type GetItineraryActivitiesRequest struct {
	ItineraryID int64 `json:"itinerary_id"`
}

type GetItineraryActivitiesResponse struct {
	Activities []Activity `json:"activities"`
}

type UpdateActivityOrderRequest struct {
	ActivityID    int64 `json:"activity_id"`
	NewOrderIndex int   `json:"new_order_index"`
}

// SuccessResponse reports whether a mutation changed anything.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ExpenseShare names one participant's portion of a new expense.
type ExpenseShare struct {
	UserID int64   `json:"user_id"`
	Amount float64 `json:"amount"`
}

type CreateExpenseRequest struct {
	TripID      int64          `json:"trip_id"`
	PayerID     int64          `json:"payer_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	Category    string         `json:"category"`
	ExpenseDate int64          `json:"expense_date"`
	SplitWith   []ExpenseShare `json:"split_with"`
}

// ExpenseSplit is one persisted share of an expense.
type ExpenseSplit struct {
	ID        int64   `json:"id"`
	ExpenseID int64   `json:"expense_id"`
	UserID    int64   `json:"user_id"`
	Amount    float64 `json:"amount"`
	IsSettled bool    `json:"is_settled"`
}

// Expense is a persisted group cost. Splits are populated by GetTripExpenses.
type Expense struct {
	ID          int64          `json:"id"`
	TripID      int64          `json:"trip_id"`
	PayerID     int64          `json:"payer_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	Category    string         `json:"category"`
	ExpenseDate int64          `json:"expense_date"`
	CreatedAt   int64          `json:"created_at"`
	Splits      []ExpenseSplit `json:"splits,omitempty"`
}

type CreateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type GetTripExpensesRequest struct {
	TripID int64 `json:"trip_id"`
}

type GetTripExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type GetUserExpenseSummaryRequest struct {
	TripID int64 `json:"trip_id"`
	UserID int64 `json:"user_id"`
}

// ExpenseSummary is a user's standing in a trip over unsettled splits.
type ExpenseSummary struct {
	Owes     float64 `json:"owes"`
	Owed     float64 `json:"owed"`
	Currency string  `json:"currency"`
}

type SettleExpenseRequest struct {
	ExpenseID int64 `json:"expense_id"`
	UserID    int64 `json:"user_id"`
}
