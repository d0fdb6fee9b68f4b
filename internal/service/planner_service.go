package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/nvelez/tripmate/internal/models"
	"github.com/nvelez/tripmate/internal/storage"
	"github.com/nvelez/tripmate/pkg/api"
)

var errEmptyActivity = errors.New("title and location_name are required")

// PlannerService implements the tripmate.v1.PlannerService procedures:
// activity creation, listing, and re-sequencing within a daily itinerary.
type PlannerService struct {
	store storage.Store
}

// NewPlannerService creates a new PlannerService with the given storage backend.
func NewPlannerService(store storage.Store) *PlannerService {
	return &PlannerService{store: store}
}

// Mount registers the service's procedures on the mux.
func (s *PlannerService) Mount(mux *http.ServeMux, opts ...connect.HandlerOption) {
	opts = withJSONCodec(opts)
	mux.Handle(api.PlannerServiceCreateActivityProcedure,
		connect.NewUnaryHandler(api.PlannerServiceCreateActivityProcedure, s.CreateActivity, opts...))
	mux.Handle(api.PlannerServiceGetItineraryActivitiesProcedure,
		connect.NewUnaryHandler(api.PlannerServiceGetItineraryActivitiesProcedure, s.GetItineraryActivities, opts...))
	mux.Handle(api.PlannerServiceUpdateActivityOrderProcedure,
		connect.NewUnaryHandler(api.PlannerServiceUpdateActivityOrderProcedure, s.UpdateActivityOrder, opts...))
}

// CreateActivity persists an activity at the caller-supplied order index.
// Callers append by passing the current list length.
func (s *PlannerService) CreateActivity(ctx context.Context, req *connect.Request[api.CreateActivityRequest]) (*connect.Response[api.CreateActivityResponse], error) {
	msg := req.Msg
	if msg.Title == "" || msg.LocationName == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errEmptyActivity)
	}

	activity := &models.Activity{
		DailyItineraryID:  msg.DailyItineraryID,
		Title:             msg.Title,
		Description:       msg.Description,
		LocationName:      msg.LocationName,
		Latitude:          msg.Latitude,
		Longitude:         msg.Longitude,
		StartTime:         msg.StartTime,
		EndTime:           msg.EndTime,
		EstimatedDuration: msg.EstimatedDuration,
		Transportation:    msg.Transportation,
		OrderIndex:        msg.OrderIndex,
	}
	if msg.CostEstimate != nil {
		cents := models.Cents(*msg.CostEstimate)
		activity.CostEstimateCents = &cents
	}

	if err := s.store.CreateActivity(ctx, activity); err != nil {
		slog.Error("CreateActivity failed", "itinerary_id", msg.DailyItineraryID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Activity created",
		"activity_id", activity.ID,
		"itinerary_id", activity.DailyItineraryID,
		"order_index", activity.OrderIndex,
	)

	return connect.NewResponse(&api.CreateActivityResponse{
		Activity: toAPIActivity(activity),
	}), nil
}

// GetItineraryActivities lists an itinerary's activities in order_index order.
func (s *PlannerService) GetItineraryActivities(ctx context.Context, req *connect.Request[api.GetItineraryActivitiesRequest]) (*connect.Response[api.GetItineraryActivitiesResponse], error) {
	activities, err := s.store.ListItineraryActivities(ctx, req.Msg.ItineraryID)
	if err != nil {
		slog.Error("GetItineraryActivities failed", "itinerary_id", req.Msg.ItineraryID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Activity, len(activities))
	for i, activity := range activities {
		out[i] = toAPIActivity(activity)
	}

	return connect.NewResponse(&api.GetItineraryActivitiesResponse{Activities: out}), nil
}

// UpdateActivityOrder moves an activity to a new position in its itinerary,
// keeping sibling indices dense and contiguous. Negative targets are
// rejected; targets past the end clamp to the last position.
func (s *PlannerService) UpdateActivityOrder(ctx context.Context, req *connect.Request[api.UpdateActivityOrderRequest]) (*connect.Response[api.SuccessResponse], error) {
	err := s.store.ReorderActivity(ctx, req.Msg.ActivityID, req.Msg.NewOrderIndex)
	if err != nil {
		switch {
		case notFound(err):
			slog.Warn("UpdateActivityOrder: activity not found", "activity_id", req.Msg.ActivityID)
			return nil, connect.NewError(connect.CodeNotFound, err)
		case errors.Is(err, storage.ErrNegativeIndex):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		default:
			slog.Error("UpdateActivityOrder failed", "activity_id", req.Msg.ActivityID, "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
	}

	slog.Info("Activity reordered",
		"activity_id", req.Msg.ActivityID,
		"new_order_index", req.Msg.NewOrderIndex,
	)

	return connect.NewResponse(&api.SuccessResponse{Success: true}), nil
}

func toAPIActivity(activity *models.Activity) api.Activity {
	out := api.Activity{
		ID:                activity.ID,
		DailyItineraryID:  activity.DailyItineraryID,
		Title:             activity.Title,
		Description:       activity.Description,
		LocationName:      activity.LocationName,
		Latitude:          activity.Latitude,
		Longitude:         activity.Longitude,
		StartTime:         activity.StartTime,
		EndTime:           activity.EndTime,
		EstimatedDuration: activity.EstimatedDuration,
		Transportation:    activity.Transportation,
		OrderIndex:        activity.OrderIndex,
		CreatedAt:         activity.CreatedAt,
		UpdatedAt:         activity.UpdatedAt,
	}
	if activity.CostEstimateCents != nil {
		cost := models.Amount(*activity.CostEstimateCents)
		out.CostEstimate = &cost
	}
	return out
}
