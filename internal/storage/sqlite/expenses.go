package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mateshq/mates/internal/models"
	"github.com/mateshq/mates/internal/storage"
)

// CreateExpense persists a new expense and its split set.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate fields if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	if expense.Date == "" {
		expense.Date = time.Now().Format("2006-01-02")
	}
	if expense.Category == "" {
		expense.Category = "Other"
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, user_id, description, amount, payer, category, expense_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.UserID, expense.Description, expense.Amount,
		expense.Payer, expense.Category, expense.Date, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, name := range expense.SplitWith {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, name) VALUES (?, ?)",
			expense.ID, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves one of the user's expenses by ID, split set included.
func (s *SQLiteStore) GetExpense(ctx context.Context, userID, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, description, amount, payer, category, expense_date, created_at
		 FROM expenses WHERE id = ? AND user_id = ?`,
		expenseID, userID,
	).Scan(&expense.ID, &expense.UserID, &expense.Description, &expense.Amount,
		&expense.Payer, &expense.Category, &expense.Date, &expense.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %q: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	expense.SplitWith, err = s.getSplits(ctx, expense.ID)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns the user's expenses matching the filter, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, userID string, filter storage.ExpenseFilter) ([]models.Expense, error) {
	query := `SELECT id, user_id, description, amount, payer, category, expense_date, created_at
		 FROM expenses WHERE user_id = ?`
	args := []interface{}{userID}

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	if filter.From != "" {
		query += " AND expense_date >= ?"
		args = append(args, filter.From)
	}
	if filter.To != "" {
		query += " AND expense_date <= ?"
		args = append(args, filter.To)
	}
	query += " ORDER BY expense_date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.UserID, &expense.Description, &expense.Amount,
			&expense.Payer, &expense.Category, &expense.Date, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for i := range expenses {
		expenses[i].SplitWith, err = s.getSplits(ctx, expenses[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return expenses, nil
}

// DeleteExpense removes one of the user's expenses. Splits cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ? AND user_id = ?",
		expenseID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %q: %w", expenseID, storage.ErrNotFound)
	}
	return nil
}

// getSplits reads the split set for an expense, preserving entry order
// via the rowid so re-reads match what was written.
func (s *SQLiteStore) getSplits(ctx context.Context, expenseID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM expense_splits WHERE expense_id = ? ORDER BY rowid",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return names, nil
}
