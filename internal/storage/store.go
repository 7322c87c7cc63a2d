// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mateshq/mates/internal/models"
)

// Sentinel errors returned by Store implementations. Services map these
// to HTTP status codes, so implementations must wrap rather than
// replace them.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateRoommate = errors.New("roommate already exists")
	ErrDuplicateCategory = errors.New("category already exists")
)

// ExpenseFilter narrows ListExpenses. Zero values mean "no constraint".
type ExpenseFilter struct {
	// Category matches exactly when non-empty.
	Category string
	// From and To bound the expense date (YYYY-MM-DD, inclusive).
	From string
	To   string
}

// Store defines the persistence interface for all Mates data.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// a hosted document store, etc.) without changing the service layer.
// All data operations are scoped to one user's account.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetRoster returns the user's roommate names in insertion order.
	GetRoster(ctx context.Context, userID string) ([]string, error)

	// AddRoommate appends a name to the user's roster.
	// Returns ErrDuplicateRoommate if the name is already present.
	AddRoommate(ctx context.Context, userID, name string) error

	// RemoveRoommate removes a name from the roster. Historical
	// expenses referencing the name are left untouched.
	// Returns ErrNotFound if the name is not on the roster.
	RemoveRoommate(ctx context.Context, userID, name string) error

	// CreateExpense persists a new expense and populates its ID.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves one of the user's expenses by ID.
	// Returns ErrNotFound if it does not exist or belongs to another user.
	GetExpense(ctx context.Context, userID, expenseID string) (*models.Expense, error)

	// ListExpenses returns the user's expenses matching the filter,
	// newest first.
	ListExpenses(ctx context.Context, userID string, filter ExpenseFilter) ([]models.Expense, error)

	// DeleteExpense removes one of the user's expenses.
	// Returns ErrNotFound if it does not exist or belongs to another user.
	DeleteExpense(ctx context.Context, userID, expenseID string) error

	// ListCategories returns the user's category labels in insertion order.
	ListCategories(ctx context.Context, userID string) ([]string, error)

	// AddCategory appends a label to the user's category list.
	// Returns ErrDuplicateCategory if the label is already present.
	AddCategory(ctx context.Context, userID, name string) error

	// Close releases any resources held by the store.
	Close() error
}
