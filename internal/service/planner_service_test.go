package service

import (
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/nvelez/tripmate/pkg/api"
)

// createActivities adds n activities titled "Activity 1".."Activity n" at
// order indices 0..n-1 and returns their ids.
func createActivities(t *testing.T, env *testEnv, itineraryID int64, n int) []int64 {
	t.Helper()
	ids := make([]int64, n)
	for i := 0; i < n; i++ {
		res, err := call[api.CreateActivityRequest, api.CreateActivityResponse](t, env, api.PlannerServiceCreateActivityProcedure,
			&api.CreateActivityRequest{
				DailyItineraryID: itineraryID,
				Title:            fmt.Sprintf("Activity %d", i+1),
				LocationName:     "Somewhere",
				OrderIndex:       i,
			})
		if err != nil {
			t.Fatalf("CreateActivity %d failed: %v", i, err)
		}
		ids[i] = res.Activity.ID
	}
	return ids
}

func listTitles(t *testing.T, env *testEnv, itineraryID int64) []string {
	t.Helper()
	res, err := call[api.GetItineraryActivitiesRequest, api.GetItineraryActivitiesResponse](t, env, api.PlannerServiceGetItineraryActivitiesProcedure,
		&api.GetItineraryActivitiesRequest{ItineraryID: itineraryID})
	if err != nil {
		t.Fatalf("GetItineraryActivities failed: %v", err)
	}
	titles := make([]string, len(res.Activities))
	for i, activity := range res.Activities {
		if activity.OrderIndex != i {
			t.Fatalf("activity %q at position %d has order_index %d", activity.Title, i, activity.OrderIndex)
		}
		titles[i] = activity.Title
	}
	return titles
}

func TestCreateActivityAndList(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUserRow(t, env, "alice@example.com", "alice")
	trip := seedTripRow(t, env, owner.ID)
	itinerary := seedItineraryRow(t, env, trip.ID)

	cost := 42.50
	duration := int64(90)
	res, err := call[api.CreateActivityRequest, api.CreateActivityResponse](t, env, api.PlannerServiceCreateActivityProcedure,
		&api.CreateActivityRequest{
			DailyItineraryID:  itinerary.ID,
			Title:             "Fushimi Inari",
			LocationName:      "Fushimi Inari Taisha",
			StartTime:         "08:00",
			EndTime:           "09:30",
			EstimatedDuration: &duration,
			Transportation:    "public_transport",
			CostEstimate:      &cost,
			OrderIndex:        0,
		})
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	if res.Activity.ID == 0 {
		t.Fatal("created activity has no id")
	}
	if res.Activity.CostEstimate == nil || *res.Activity.CostEstimate != 42.50 {
		t.Errorf("cost_estimate = %v, want 42.50", res.Activity.CostEstimate)
	}

	list, err := call[api.GetItineraryActivitiesRequest, api.GetItineraryActivitiesResponse](t, env, api.PlannerServiceGetItineraryActivitiesProcedure,
		&api.GetItineraryActivitiesRequest{ItineraryID: itinerary.ID})
	if err != nil {
		t.Fatalf("GetItineraryActivities failed: %v", err)
	}
	if len(list.Activities) != 1 {
		t.Fatalf("activities = %d, want 1", len(list.Activities))
	}
	got := list.Activities[0]
	if got.Title != "Fushimi Inari" || got.StartTime != "08:00" || got.Transportation != "public_transport" {
		t.Errorf("listed activity = %+v", got)
	}
	if got.EstimatedDuration == nil || *got.EstimatedDuration != 90 {
		t.Errorf("estimated_duration = %v, want 90", got.EstimatedDuration)
	}
}

func TestCreateActivityValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := call[api.CreateActivityRequest, api.CreateActivityResponse](t, env, api.PlannerServiceCreateActivityProcedure,
		&api.CreateActivityRequest{DailyItineraryID: 1, LocationName: "Somewhere"})
	wantCode(t, err, connect.CodeInvalidArgument)

	_, err = call[api.CreateActivityRequest, api.CreateActivityResponse](t, env, api.PlannerServiceCreateActivityProcedure,
		&api.CreateActivityRequest{DailyItineraryID: 1, Title: "No location"})
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestUpdateActivityOrder(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUserRow(t, env, "alice@example.com", "alice")
	trip := seedTripRow(t, env, owner.ID)
	itinerary := seedItineraryRow(t, env, trip.ID)
	ids := createActivities(t, env, itinerary.ID, 5)

	res, err := call[api.UpdateActivityOrderRequest, api.SuccessResponse](t, env, api.PlannerServiceUpdateActivityOrderProcedure,
		&api.UpdateActivityOrderRequest{ActivityID: ids[0], NewOrderIndex: 2})
	if err != nil {
		t.Fatalf("UpdateActivityOrder failed: %v", err)
	}
	if !res.Success {
		t.Error("UpdateActivityOrder success = false")
	}

	want := []string{"Activity 2", "Activity 3", "Activity 1", "Activity 4", "Activity 5"}
	got := listTitles(t, env, itinerary.ID)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestUpdateActivityOrderClampsPastEnd(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUserRow(t, env, "alice@example.com", "alice")
	trip := seedTripRow(t, env, owner.ID)
	itinerary := seedItineraryRow(t, env, trip.ID)
	ids := createActivities(t, env, itinerary.ID, 3)

	res, err := call[api.UpdateActivityOrderRequest, api.SuccessResponse](t, env, api.PlannerServiceUpdateActivityOrderProcedure,
		&api.UpdateActivityOrderRequest{ActivityID: ids[0], NewOrderIndex: 50})
	if err != nil {
		t.Fatalf("UpdateActivityOrder failed: %v", err)
	}
	if !res.Success {
		t.Error("UpdateActivityOrder success = false")
	}

	want := []string{"Activity 2", "Activity 3", "Activity 1"}
	got := listTitles(t, env, itinerary.ID)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order after clamp = %v, want %v", got, want)
		}
	}
}

func TestUpdateActivityOrderErrors(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUserRow(t, env, "alice@example.com", "alice")
	trip := seedTripRow(t, env, owner.ID)
	itinerary := seedItineraryRow(t, env, trip.ID)
	ids := createActivities(t, env, itinerary.ID, 2)

	_, err := call[api.UpdateActivityOrderRequest, api.SuccessResponse](t, env, api.PlannerServiceUpdateActivityOrderProcedure,
		&api.UpdateActivityOrderRequest{ActivityID: ids[0], NewOrderIndex: -1})
	wantCode(t, err, connect.CodeInvalidArgument)

	_, err = call[api.UpdateActivityOrderRequest, api.SuccessResponse](t, env, api.PlannerServiceUpdateActivityOrderProcedure,
		&api.UpdateActivityOrderRequest{ActivityID: 9999, NewOrderIndex: 0})
	wantCode(t, err, connect.CodeNotFound)
}
