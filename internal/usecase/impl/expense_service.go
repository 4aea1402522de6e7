package impl

import (
	"context"
	"log/slog"
	"strings"

	"expensetracker/internal/domain/entity"
	domainerrors "expensetracker/internal/domain/errors"
	"expensetracker/internal/domain/repository"
	"expensetracker/internal/domain/service"
	"expensetracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// expenseService implements the ExpenseUsecase interface.
type expenseService struct {
	expenseRepo repository.ExpenseRepository
	logger      *slog.Logger
}

// ExpenseServiceParams holds dependencies for ExpenseService, injected by Fx.
type ExpenseServiceParams struct {
	fx.In

	ExpenseRepo repository.ExpenseRepository
	Logger      *slog.Logger
}

// NewExpenseService is the constructor for expenseService.
func NewExpenseService(params ExpenseServiceParams) usecase.ExpenseUsecase {
	return &expenseService{
		expenseRepo: params.ExpenseRepo,
		logger:      params.Logger,
	}
}

func (s *expenseService) CreateExpense(ctx context.Context, principal service.Principal, input usecase.ExpenseInput) (*entity.Expense, error) {
	if err := validateExpenseInput(input); err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		UserID:      principal.UserID,
		Title:       strings.TrimSpace(input.Title),
		Category:    strings.TrimSpace(input.Category),
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, domainerrors.ErrExpenseWriteFailed.WrapMessage(err.Error())
	}

	s.logger.InfoContext(ctx, "expense created",
		slog.Int64("userID", principal.UserID),
		slog.Int64("expenseID", expense.ID),
	)

	return expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, principal service.Principal, id int64) (*entity.Expense, error) {
	expense, err := s.expenseRepo.FindByOwnerAndID(ctx, principal.UserID, id)
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, domainerrors.ErrExpenseNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err)
	}

	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, principal service.Principal, input usecase.ListExpensesInput) (*usecase.ExpenseListOutput, error) {
	page := input.Page
	if page < 0 {
		page = 0
	}
	size := input.Size
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	filter := repository.ExpenseFilter{
		Category: strings.TrimSpace(input.Category),
		From:     input.From,
		To:       input.To,
	}

	result, err := s.expenseRepo.ListByOwner(ctx, principal.UserID, filter, page*size, size)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err)
	}

	totalPages := int(result.Total) / size
	if int(result.Total)%size != 0 {
		totalPages++
	}

	return &usecase.ExpenseListOutput{
		Items:      result.Items,
		Total:      result.Total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, principal service.Principal, id int64, input usecase.ExpenseInput) (*entity.Expense, error) {
	if err := validateExpenseInput(input); err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		ID:          id,
		UserID:      principal.UserID,
		Title:       strings.TrimSpace(input.Title),
		Category:    strings.TrimSpace(input.Category),
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
	}
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, domainerrors.ErrExpenseNotFound
		}

		return nil, domainerrors.ErrExpenseWriteFailed.WrapMessage(err.Error())
	}

	return s.GetExpense(ctx, principal, id)
}

func (s *expenseService) DeleteExpense(ctx context.Context, principal service.Principal, id int64) error {
	if err := s.expenseRepo.Delete(ctx, principal.UserID, id); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return domainerrors.ErrExpenseNotFound
		}

		return domainerrors.ErrExpenseWriteFailed.WrapMessage(err.Error())
	}

	s.logger.InfoContext(ctx, "expense deleted",
		slog.Int64("userID", principal.UserID),
		slog.Int64("expenseID", id),
	)

	return nil
}

func validateExpenseInput(input usecase.ExpenseInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title must not be blank")
	}
	if input.Amount <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}
	if input.Date.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("date is required")
	}

	return nil
}
