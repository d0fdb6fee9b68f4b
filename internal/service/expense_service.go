package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/nvelez/tripmate/internal/ledger"
	"github.com/nvelez/tripmate/internal/models"
	"github.com/nvelez/tripmate/internal/storage"
	"github.com/nvelez/tripmate/pkg/api"
)

// ExpenseService implements the tripmate.v1.ExpenseService procedures.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// Mount registers the service's procedures on the mux.
func (s *ExpenseService) Mount(mux *http.ServeMux, opts ...connect.HandlerOption) {
	opts = withJSONCodec(opts)
	mux.Handle(api.ExpenseServiceCreateExpenseProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceCreateExpenseProcedure, s.CreateExpense, opts...))
	mux.Handle(api.ExpenseServiceGetTripExpensesProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceGetTripExpensesProcedure, s.GetTripExpenses, opts...))
	mux.Handle(api.ExpenseServiceGetUserExpenseSummaryProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceGetUserExpenseSummaryProcedure, s.GetUserExpenseSummary, opts...))
	mux.Handle(api.ExpenseServiceSettleExpenseProcedure,
		connect.NewUnaryHandler(api.ExpenseServiceSettleExpenseProcedure, s.SettleExpense, opts...))
}

// CreateExpense persists an expense and its splits atomically and returns
// the stored expense.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	msg := req.Msg

	shares := make([]ledger.Share, len(msg.SplitWith))
	for i, share := range msg.SplitWith {
		shares[i] = ledger.Share{UserID: share.UserID, Amount: share.Amount}
	}

	expense, err := ledger.NewExpense(
		msg.TripID, msg.PayerID, msg.Title, msg.Description,
		msg.Amount, msg.Currency, msg.Category, msg.ExpenseDate, shares,
	)
	if err != nil {
		slog.Error("CreateExpense validation failed", "trip_id", msg.TripID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "trip_id", msg.TripID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"trip_id", expense.TripID,
		"payer_id", expense.PayerID,
		"splits", len(expense.Splits),
	)

	return connect.NewResponse(&api.CreateExpenseResponse{
		Expense: toAPIExpense(expense, false),
	}), nil
}

// GetTripExpenses returns all expenses of a trip, each with its splits.
func (s *ExpenseService) GetTripExpenses(ctx context.Context, req *connect.Request[api.GetTripExpensesRequest]) (*connect.Response[api.GetTripExpensesResponse], error) {
	expenses, err := s.store.ListTripExpenses(ctx, req.Msg.TripID)
	if err != nil {
		slog.Error("GetTripExpenses failed", "trip_id", req.Msg.TripID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Expense, len(expenses))
	for i, expense := range expenses {
		out[i] = toAPIExpense(expense, true)
	}

	return connect.NewResponse(&api.GetTripExpensesResponse{Expenses: out}), nil
}

// GetUserExpenseSummary computes the owes/owed totals for one user within a
// trip, counting unsettled splits only.
func (s *ExpenseService) GetUserExpenseSummary(ctx context.Context, req *connect.Request[api.GetUserExpenseSummaryRequest]) (*connect.Response[api.ExpenseSummary], error) {
	balance, err := s.store.TripBalance(ctx, req.Msg.TripID, req.Msg.UserID)
	if err != nil {
		slog.Error("GetUserExpenseSummary failed",
			"trip_id", req.Msg.TripID, "user_id", req.Msg.UserID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ExpenseSummary{
		Owes:     models.Amount(balance.OwesCents),
		Owed:     models.Amount(balance.OwedCents),
		Currency: balance.Currency,
	}), nil
}

// SettleExpense marks one user's split of an expense as settled. A missing
// split is not an error: the response carries success=false and nothing
// changes.
func (s *ExpenseService) SettleExpense(ctx context.Context, req *connect.Request[api.SettleExpenseRequest]) (*connect.Response[api.SuccessResponse], error) {
	settled, err := s.store.SettleSplit(ctx, req.Msg.ExpenseID, req.Msg.UserID)
	if err != nil {
		slog.Error("SettleExpense failed",
			"expense_id", req.Msg.ExpenseID, "user_id", req.Msg.UserID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if !settled {
		slog.Warn("SettleExpense matched no split",
			"expense_id", req.Msg.ExpenseID, "user_id", req.Msg.UserID)
	}

	return connect.NewResponse(&api.SuccessResponse{Success: settled}), nil
}

// toAPIExpense converts a stored expense to its wire form. Splits are
// included only for listing responses.
func toAPIExpense(expense *models.Expense, withSplits bool) api.Expense {
	out := api.Expense{
		ID:          expense.ID,
		TripID:      expense.TripID,
		PayerID:     expense.PayerID,
		Title:       expense.Title,
		Description: expense.Description,
		Amount:      models.Amount(expense.AmountCents),
		Currency:    expense.Currency,
		Category:    expense.Category,
		ExpenseDate: expense.ExpenseDate,
		CreatedAt:   expense.CreatedAt,
	}
	if withSplits {
		out.Splits = make([]api.ExpenseSplit, len(expense.Splits))
		for i, split := range expense.Splits {
			out.Splits[i] = api.ExpenseSplit{
				ID:        split.ID,
				ExpenseID: split.ExpenseID,
				UserID:    split.UserID,
				Amount:    models.Amount(split.AmountCents),
				IsSettled: split.IsSettled,
			}
		}
	}
	return out
}

// notFound reports whether err wraps storage.ErrNotFound.
func notFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
