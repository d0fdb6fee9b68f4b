package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nvelez/tripmate/internal/models"
)

// defaultCurrency is reported for trips that have no expenses yet.
const defaultCurrency = "USD"

// CreateExpense inserts an expense and all of its splits in one transaction;
// a failure on any split rolls back the expense row too.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO expenses (trip_id, payer_id, title, description, amount_cents, currency, category, expense_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.TripID, expense.PayerID, expense.Title, nullString(expense.Description),
		expense.AmountCents, expense.Currency, expense.Category,
		expense.ExpenseDate, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	expense.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}

	for i := range expense.Splits {
		split := &expense.Splits[i]
		split.ExpenseID = expense.ID

		res, err := tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, user_id, amount_cents, is_settled) VALUES (?, ?, ?, ?)",
			split.ExpenseID, split.UserID, split.AmountCents, split.IsSettled,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
		split.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read split id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListTripExpenses returns the trip's expenses with their splits attached,
// oldest first.
func (s *SQLiteStore) ListTripExpenses(ctx context.Context, tripID int64) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, payer_id, title, description, amount_cents, currency, category, expense_date, created_at
		 FROM expenses WHERE trip_id = ? ORDER BY id ASC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	byID := make(map[int64]*models.Expense)
	for rows.Next() {
		expense := &models.Expense{}
		var description sql.NullString
		if err := rows.Scan(
			&expense.ID, &expense.TripID, &expense.PayerID, &expense.Title, &description,
			&expense.AmountCents, &expense.Currency, &expense.Category,
			&expense.ExpenseDate, &expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Description = description.String
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	if len(expenses) == 0 {
		return expenses, nil
	}

	splitRows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.expense_id, s.user_id, s.amount_cents, s.is_settled
		 FROM expense_splits s
		 JOIN expenses e ON e.id = s.expense_id
		 WHERE e.trip_id = ? ORDER BY s.id ASC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var split models.ExpenseSplit
		if err := splitRows.Scan(&split.ID, &split.ExpenseID, &split.UserID, &split.AmountCents, &split.IsSettled); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		if expense, ok := byID[split.ExpenseID]; ok {
			expense.Splits = append(expense.Splits, split)
		}
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense splits: %w", err)
	}

	return expenses, nil
}

// SettleSplit marks the split for (expenseID, userID) as settled. Returns
// false only when no matching split exists; settling an already-settled
// split counts as success.
func (s *SQLiteStore) SettleSplit(ctx context.Context, expenseID, userID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE expense_splits SET is_settled = 1 WHERE expense_id = ? AND user_id = ?",
		expenseID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to settle split: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// TripBalance computes the user's owes/owed totals over unsettled splits.
// Owes sums the user's own splits on expenses paid by someone else; owed
// sums other members' splits on expenses the user paid. The user's share of
// their own expense counts toward neither.
func (s *SQLiteStore) TripBalance(ctx context.Context, tripID, userID int64) (*models.Balance, error) {
	balance := &models.Balance{Currency: defaultCurrency}

	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(s.amount_cents), 0)
		 FROM expense_splits s
		 JOIN expenses e ON e.id = s.expense_id
		 WHERE e.trip_id = ? AND s.user_id = ? AND s.is_settled = 0 AND e.payer_id != ?`,
		tripID, userID, userID,
	).Scan(&balance.OwesCents)
	if err != nil {
		return nil, fmt.Errorf("failed to sum owed amounts: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(s.amount_cents), 0)
		 FROM expense_splits s
		 JOIN expenses e ON e.id = s.expense_id
		 WHERE e.trip_id = ? AND e.payer_id = ? AND s.is_settled = 0 AND s.user_id != ?`,
		tripID, userID, userID,
	).Scan(&balance.OwedCents)
	if err != nil {
		return nil, fmt.Errorf("failed to sum owing amounts: %w", err)
	}

	// Dominant currency across the trip's expenses; ties go to the currency
	// whose first expense appeared earliest.
	var currency string
	err = s.db.QueryRowContext(ctx,
		`SELECT currency FROM expenses WHERE trip_id = ?
		 GROUP BY currency ORDER BY COUNT(*) DESC, MIN(id) ASC LIMIT 1`,
		tripID,
	).Scan(&currency)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to pick trip currency: %w", err)
	}
	if currency != "" {
		balance.Currency = currency
	}

	return balance, nil
}
