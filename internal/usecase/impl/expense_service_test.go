package impl

import (
	"context"
	"testing"
	"time"

	"expensetracker/internal/domain/entity"
	domainerrors "expensetracker/internal/domain/errors"
	"expensetracker/internal/domain/repository"
	"expensetracker/internal/domain/service"
	mockRepo "expensetracker/internal/mocks/repository"
	"expensetracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testPrincipal = service.Principal{UserID: 42, Username: "alice"}

func newExpenseServiceForTest(t *testing.T) (usecase.ExpenseUsecase, *mockRepo.MockExpenseRepository) {
	t.Helper()

	expenseRepo := mockRepo.NewMockExpenseRepository(t)
	svc := NewExpenseService(ExpenseServiceParams{
		ExpenseRepo: expenseRepo,
		Logger:      newDiscardLogger(),
	})

	return svc, expenseRepo
}

func TestExpenseService_CreateExpense_Success(t *testing.T) {
	svc, expenseRepo := newExpenseServiceForTest(t)
	ctx := context.Background()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	expenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Expense")).
		RunAndReturn(func(_ context.Context, expense *entity.Expense) error {
			expense.ID = 9

			return nil
		})

	expense, err := svc.CreateExpense(ctx, testPrincipal, usecase.ExpenseInput{
		Title:  "Groceries",
		Amount: 2350,
		Date:   date,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), expense.ID)
	assert.Equal(t, testPrincipal.UserID, expense.UserID)
}

func TestExpenseService_CreateExpense_Validation(t *testing.T) {
	svc, _ := newExpenseServiceForTest(t)
	ctx := context.Background()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input usecase.ExpenseInput
	}{
		{"blank title", usecase.ExpenseInput{Title: "  ", Amount: 100, Date: date}},
		{"zero amount", usecase.ExpenseInput{Title: "Coffee", Amount: 0, Date: date}},
		{"negative amount", usecase.ExpenseInput{Title: "Coffee", Amount: -5, Date: date}},
		{"missing date", usecase.ExpenseInput{Title: "Coffee", Amount: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateExpense(ctx, testPrincipal, tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestExpenseService_GetExpense_NotFound(t *testing.T) {
	svc, expenseRepo := newExpenseServiceForTest(t)
	ctx := context.Background()

	expenseRepo.EXPECT().
		FindByOwnerAndID(ctx, testPrincipal.UserID, int64(99)).
		Return(nil, repository.ErrExpenseNotFound)

	_, err := svc.GetExpense(ctx, testPrincipal, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrExpenseNotFound)
}

func TestExpenseService_ListExpenses_Defaults(t *testing.T) {
	svc, expenseRepo := newExpenseServiceForTest(t)
	ctx := context.Background()

	expenseRepo.EXPECT().
		ListByOwner(ctx, testPrincipal.UserID, repository.ExpenseFilter{}, 0, defaultPageSize).
		Return(&repository.ExpensePage{Items: nil, Total: 0}, nil)

	output, err := svc.ListExpenses(ctx, testPrincipal, usecase.ListExpensesInput{})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Page)
	assert.Equal(t, defaultPageSize, output.Size)
	assert.Equal(t, 0, output.TotalPages)
}

func TestExpenseService_ListExpenses_CapsPageSize(t *testing.T) {
	svc, expenseRepo := newExpenseServiceForTest(t)
	ctx := context.Background()

	expenseRepo.EXPECT().
		ListByOwner(ctx, testPrincipal.UserID, repository.ExpenseFilter{}, 2*maxPageSize, maxPageSize).
		Return(&repository.ExpensePage{Items: nil, Total: 250}, nil)

	output, err := svc.ListExpenses(ctx, testPrincipal, usecase.ListExpensesInput{Page: 2, Size: 5000})
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, output.Size)
	assert.Equal(t, 3, output.TotalPages)
}

func TestExpenseService_ListExpenses_PassesFilter(t *testing.T) {
	svc, expenseRepo := newExpenseServiceForTest(t)
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	expenseRepo.EXPECT().
		ListByOwner(ctx, testPrincipal.UserID, repository.ExpenseFilter{Category: "food", From: from, To: to}, 0, defaultPageSize).
		Return(&repository.ExpensePage{Items: nil, Total: 0}, nil)

	_, err := svc.ListExpenses(ctx, testPrincipal, usecase.ListExpensesInput{
		Category: " food ",
		From:     from,
		To:       to,
	})
	require.NoError(t, err)
}

func TestExpenseService_UpdateExpense_NotFound(t *testing.T) {
	svc, expenseRepo := newExpenseServiceForTest(t)
	ctx := context.Background()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	expenseRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Expense")).
		Return(repository.ErrExpenseNotFound)

	_, err := svc.UpdateExpense(ctx, testPrincipal, 99, usecase.ExpenseInput{
		Title:  "Groceries",
		Amount: 2350,
		Date:   date,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrExpenseNotFound)
}

func TestExpenseService_DeleteExpense_NotFound(t *testing.T) {
	svc, expenseRepo := newExpenseServiceForTest(t)
	ctx := context.Background()

	expenseRepo.EXPECT().
		Delete(ctx, testPrincipal.UserID, int64(99)).
		Return(repository.ErrExpenseNotFound)

	err := svc.DeleteExpense(ctx, testPrincipal, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrExpenseNotFound)
}

func TestExpenseService_DeleteExpense_Success(t *testing.T) {
	svc, expenseRepo := newExpenseServiceForTest(t)
	ctx := context.Background()

	expenseRepo.EXPECT().
		Delete(ctx, testPrincipal.UserID, int64(5)).
		Return(nil)

	require.NoError(t, svc.DeleteExpense(ctx, testPrincipal, 5))
}
