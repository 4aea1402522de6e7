package repository

import (
	"context"
	"errors"
	"time"

	"expensetracker/internal/domain/entity"
)

// ErrExpenseNotFound is returned when an expense does not exist for the given
// owner. A row owned by another user yields the same error so that ownership
// cannot be probed.
var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseFilter narrows a listing to a category and/or a date range.
// Zero values mean "no constraint".
type ExpenseFilter struct {
	Category string
	From     time.Time
	To       time.Time
}

// ExpensePage carries one page of results plus the total row count for the
// same filter, so the caller can compute page counts.
type ExpensePage struct {
	Items []*entity.Expense
	Total int64
}

// ExpenseRepository defines the standard operations for expense persistence.
// Every operation takes the owning user's identity; implementations must scope
// all queries by it.
type ExpenseRepository interface {
	// FindByOwnerAndID retrieves one expense owned by userID.
	FindByOwnerAndID(ctx context.Context, userID, id int64) (*entity.Expense, error)

	// ListByOwner returns a page of the owner's expenses, newest date first.
	ListByOwner(ctx context.Context, userID int64, filter ExpenseFilter, offset, limit int) (*ExpensePage, error)

	// Create persists a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// Update modifies an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense owned by userID.
	Delete(ctx context.Context, userID, id int64) error
}
