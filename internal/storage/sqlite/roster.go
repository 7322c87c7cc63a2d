package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mateshq/mates/internal/storage"
)

// GetRoster returns the user's roommate names in insertion order.
func (s *SQLiteStore) GetRoster(ctx context.Context, userID string) ([]string, error) {
	return s.listNames(ctx, "roommates", userID)
}

// AddRoommate appends a name to the user's roster.
func (s *SQLiteStore) AddRoommate(ctx context.Context, userID, name string) error {
	if err := s.appendName(ctx, "roommates", userID, name); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicateRoommate
		}
		return fmt.Errorf("failed to add roommate: %w", err)
	}
	return nil
}

// RemoveRoommate removes a name from the user's roster.
// Expenses referencing the name are deliberately left alone.
func (s *SQLiteStore) RemoveRoommate(ctx context.Context, userID, name string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM roommates WHERE user_id = ? AND name = ?",
		userID, name,
	)
	if err != nil {
		return fmt.Errorf("failed to remove roommate: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("roommate %q: %w", name, storage.ErrNotFound)
	}
	return nil
}

// ListCategories returns the user's category labels in insertion order.
func (s *SQLiteStore) ListCategories(ctx context.Context, userID string) ([]string, error) {
	return s.listNames(ctx, "categories", userID)
}

// AddCategory appends a label to the user's category list.
func (s *SQLiteStore) AddCategory(ctx context.Context, userID, name string) error {
	if err := s.appendName(ctx, "categories", userID, name); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicateCategory
		}
		return fmt.Errorf("failed to add category: %w", err)
	}
	return nil
}

// listNames reads an ordered name list (roommates or categories) for a user.
func (s *SQLiteStore) listNames(ctx context.Context, table, userID string) ([]string, error) {
	query := fmt.Sprintf("SELECT name FROM %s WHERE user_id = ? ORDER BY position", table)
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", table, err)
	}
	return names, nil
}

// appendName inserts a name at the end of an ordered list table.
// The position is one past the current maximum, inside a transaction so
// concurrent appends cannot collide.
func (s *SQLiteStore) appendName(ctx context.Context, table, userID, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var position int
	query := fmt.Sprintf("SELECT COALESCE(MAX(position) + 1, 0) FROM %s WHERE user_id = ?", table)
	if err := tx.QueryRowContext(ctx, query, userID).Scan(&position); err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to find next position: %w", err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (user_id, name, position) VALUES (?, ?, ?)", table)
	if _, err := tx.ExecContext(ctx, insert, userID, name, position); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
