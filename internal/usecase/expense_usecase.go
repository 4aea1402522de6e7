package usecase

import (
	"context"
	"time"

	"expensetracker/internal/domain/entity"
	"expensetracker/internal/domain/service"
)

// --- Input DTOs ---

// ExpenseInput carries the writable fields of an expense for create and update.
type ExpenseInput struct {
	Title       string
	Category    string
	Amount      int64
	Date        time.Time
	Description string
}

// ListExpensesInput narrows and paginates an expense listing.
type ListExpensesInput struct {
	Category string
	From     time.Time
	To       time.Time
	Page     int
	Size     int
}

// --- Output DTOs ---

// ExpenseListOutput is one page of a user's expenses.
type ExpenseListOutput struct {
	Items      []*entity.Expense
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

// ExpenseUsecase defines the interface for expense operations. Every operation
// acts on behalf of a verified principal and only ever touches that
// principal's own rows.
type ExpenseUsecase interface {
	CreateExpense(ctx context.Context, principal service.Principal, input ExpenseInput) (*entity.Expense, error)
	GetExpense(ctx context.Context, principal service.Principal, id int64) (*entity.Expense, error)
	ListExpenses(ctx context.Context, principal service.Principal, input ListExpensesInput) (*ExpenseListOutput, error)
	UpdateExpense(ctx context.Context, principal service.Principal, id int64, input ExpenseInput) (*entity.Expense, error)
	DeleteExpense(ctx context.Context, principal service.Principal, id int64) error
}
