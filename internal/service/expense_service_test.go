package service

import (
	"testing"

	"connectrpc.com/connect"

	"github.com/nvelez/tripmate/internal/models"
	"github.com/nvelez/tripmate/pkg/api"
)

func TestCreateExpenseAndList(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUserRow(t, env, "alice@example.com", "alice")
	bob := seedUserRow(t, env, "bob@example.com", "bob")
	trip := seedTripRow(t, env, alice.ID)

	created, err := call[api.CreateExpenseRequest, api.CreateExpenseResponse](t, env, api.ExpenseServiceCreateExpenseProcedure,
		&api.CreateExpenseRequest{
			TripID:      trip.ID,
			PayerID:     alice.ID,
			Title:       "Dinner",
			Amount:      100,
			Currency:    "USD",
			Category:    models.CategoryFood,
			ExpenseDate: 1756339200,
			SplitWith: []api.ExpenseShare{
				{UserID: alice.ID, Amount: 50},
				{UserID: bob.ID, Amount: 50},
			},
		})
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	if created.Expense.ID == 0 {
		t.Fatal("created expense has no id")
	}
	if created.Expense.Amount != 100 || created.Expense.Currency != "USD" {
		t.Errorf("created expense = %+v", created.Expense)
	}

	list, err := call[api.GetTripExpensesRequest, api.GetTripExpensesResponse](t, env, api.ExpenseServiceGetTripExpensesProcedure,
		&api.GetTripExpensesRequest{TripID: trip.ID})
	if err != nil {
		t.Fatalf("GetTripExpenses failed: %v", err)
	}
	if len(list.Expenses) != 1 {
		t.Fatalf("expenses = %d, want 1", len(list.Expenses))
	}
	expense := list.Expenses[0]
	if len(expense.Splits) != 2 {
		t.Fatalf("splits = %d, want 2", len(expense.Splits))
	}
	for _, split := range expense.Splits {
		if split.Amount != 50 || split.IsSettled {
			t.Errorf("split = %+v, want unsettled 50", split)
		}
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	env := newTestEnv(t)

	base := api.CreateExpenseRequest{
		TripID:      1,
		PayerID:     1,
		Title:       "Dinner",
		Amount:      100,
		Currency:    "USD",
		Category:    models.CategoryFood,
		ExpenseDate: 1756339200,
	}

	noAmount := base
	noAmount.Amount = 0
	_, err := call[api.CreateExpenseRequest, api.CreateExpenseResponse](t, env, api.ExpenseServiceCreateExpenseProcedure, &noAmount)
	wantCode(t, err, connect.CodeInvalidArgument)

	badCategory := base
	badCategory.Category = "rides"
	_, err = call[api.CreateExpenseRequest, api.CreateExpenseResponse](t, env, api.ExpenseServiceCreateExpenseProcedure, &badCategory)
	wantCode(t, err, connect.CodeInvalidArgument)

	badCurrency := base
	badCurrency.Currency = "DOLLARS"
	_, err = call[api.CreateExpenseRequest, api.CreateExpenseResponse](t, env, api.ExpenseServiceCreateExpenseProcedure, &badCurrency)
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestSettleExpense(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUserRow(t, env, "alice@example.com", "alice")
	bob := seedUserRow(t, env, "bob@example.com", "bob")
	trip := seedTripRow(t, env, alice.ID)

	created, err := call[api.CreateExpenseRequest, api.CreateExpenseResponse](t, env, api.ExpenseServiceCreateExpenseProcedure,
		&api.CreateExpenseRequest{
			TripID:      trip.ID,
			PayerID:     alice.ID,
			Title:       "Taxi",
			Amount:      30,
			Currency:    "USD",
			Category:    models.CategoryTransport,
			ExpenseDate: 1756339200,
			SplitWith:   []api.ExpenseShare{{UserID: bob.ID, Amount: 15}},
		})
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	res, err := call[api.SettleExpenseRequest, api.SuccessResponse](t, env, api.ExpenseServiceSettleExpenseProcedure,
		&api.SettleExpenseRequest{ExpenseID: created.Expense.ID, UserID: bob.ID})
	if err != nil {
		t.Fatalf("SettleExpense failed: %v", err)
	}
	if !res.Success {
		t.Error("SettleExpense success = false")
	}

	// Settling twice still succeeds.
	res, err = call[api.SettleExpenseRequest, api.SuccessResponse](t, env, api.ExpenseServiceSettleExpenseProcedure,
		&api.SettleExpenseRequest{ExpenseID: created.Expense.ID, UserID: bob.ID})
	if err != nil {
		t.Fatalf("repeat SettleExpense failed: %v", err)
	}
	if !res.Success {
		t.Error("repeat SettleExpense success = false")
	}

	// No matching split: not an error, just success=false.
	res, err = call[api.SettleExpenseRequest, api.SuccessResponse](t, env, api.ExpenseServiceSettleExpenseProcedure,
		&api.SettleExpenseRequest{ExpenseID: created.Expense.ID, UserID: alice.ID})
	if err != nil {
		t.Fatalf("SettleExpense with no split failed: %v", err)
	}
	if res.Success {
		t.Error("SettleExpense with no split success = true")
	}
}

func TestGetUserExpenseSummary(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUserRow(t, env, "alice@example.com", "alice")
	bob := seedUserRow(t, env, "bob@example.com", "bob")
	trip := seedTripRow(t, env, alice.ID)

	created, err := call[api.CreateExpenseRequest, api.CreateExpenseResponse](t, env, api.ExpenseServiceCreateExpenseProcedure,
		&api.CreateExpenseRequest{
			TripID:      trip.ID,
			PayerID:     alice.ID,
			Title:       "Dinner",
			Amount:      100,
			Currency:    "USD",
			Category:    models.CategoryFood,
			ExpenseDate: 1756339200,
			SplitWith: []api.ExpenseShare{
				{UserID: alice.ID, Amount: 50},
				{UserID: bob.ID, Amount: 50},
			},
		})
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	summary, err := call[api.GetUserExpenseSummaryRequest, api.ExpenseSummary](t, env, api.ExpenseServiceGetUserExpenseSummaryProcedure,
		&api.GetUserExpenseSummaryRequest{TripID: trip.ID, UserID: bob.ID})
	if err != nil {
		t.Fatalf("GetUserExpenseSummary failed: %v", err)
	}
	if summary.Owes != 50 || summary.Owed != 0 || summary.Currency != "USD" {
		t.Errorf("bob summary = %+v, want {50 0 USD}", summary)
	}

	summary, err = call[api.GetUserExpenseSummaryRequest, api.ExpenseSummary](t, env, api.ExpenseServiceGetUserExpenseSummaryProcedure,
		&api.GetUserExpenseSummaryRequest{TripID: trip.ID, UserID: alice.ID})
	if err != nil {
		t.Fatalf("GetUserExpenseSummary failed: %v", err)
	}
	if summary.Owes != 0 || summary.Owed != 50 {
		t.Errorf("alice summary = %+v, want {0 50 USD}", summary)
	}

	if _, err := call[api.SettleExpenseRequest, api.SuccessResponse](t, env, api.ExpenseServiceSettleExpenseProcedure,
		&api.SettleExpenseRequest{ExpenseID: created.Expense.ID, UserID: bob.ID}); err != nil {
		t.Fatalf("SettleExpense failed: %v", err)
	}

	summary, err = call[api.GetUserExpenseSummaryRequest, api.ExpenseSummary](t, env, api.ExpenseServiceGetUserExpenseSummaryProcedure,
		&api.GetUserExpenseSummaryRequest{TripID: trip.ID, UserID: bob.ID})
	if err != nil {
		t.Fatalf("GetUserExpenseSummary failed: %v", err)
	}
	if summary.Owes != 0 || summary.Owed != 0 {
		t.Errorf("bob summary after settle = %+v, want {0 0}", summary)
	}
}
