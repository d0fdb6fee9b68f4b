package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/nvelez/tripmate/internal/auth"
	"github.com/nvelez/tripmate/internal/models"
	"github.com/nvelez/tripmate/internal/storage/sqlite"
	"github.com/nvelez/tripmate/pkg/api"
)

// testEnv runs all three services against a throwaway SQLite database behind
// a real HTTP server, so tests exercise the full Connect round trip.
type testEnv struct {
	store      *sqlite.SQLiteStore
	jwtManager *auth.JWTManager
	url        string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	mux := http.NewServeMux()
	NewUserService(store, jwtManager).Mount(mux)
	NewPlannerService(store).Mount(mux)
	NewExpenseService(store).Mount(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{store: store, jwtManager: jwtManager, url: server.URL}
}

// call invokes one unary procedure and returns the response message.
func call[Req, Res any](t *testing.T, env *testEnv, procedure string, msg *Req) (*Res, error) {
	t.Helper()
	client := connect.NewClient[Req, Res](http.DefaultClient, env.url+procedure,
		connect.WithCodec(api.JSONCodec{}))
	res, err := client.CallUnary(context.Background(), connect.NewRequest(msg))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

// wantCode fails the test unless err carries the given Connect code.
func wantCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	if got := connect.CodeOf(err); got != code {
		t.Fatalf("error code = %v, want %v (error: %v)", got, code, err)
	}
}

func seedUserRow(t *testing.T, env *testEnv, email, username string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Username: username, PasswordHash: "x"}
	if err := env.store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

func seedTripRow(t *testing.T, env *testEnv, ownerID int64) *models.Trip {
	t.Helper()
	trip := &models.Trip{
		UserID:      ownerID,
		Title:       "Kyoto",
		Destination: "Kyoto, Japan",
		StartDate:   1759276800,
		EndDate:     1760054400,
	}
	if err := env.store.CreateTrip(context.Background(), trip); err != nil {
		t.Fatalf("failed to seed trip: %v", err)
	}
	return trip
}

func seedItineraryRow(t *testing.T, env *testEnv, tripID int64) *models.DailyItinerary {
	t.Helper()
	itinerary := &models.DailyItinerary{TripID: tripID, Date: 1759276800, Title: "Day 1"}
	if err := env.store.CreateItinerary(context.Background(), itinerary); err != nil {
		t.Fatalf("failed to seed itinerary: %v", err)
	}
	return itinerary
}
