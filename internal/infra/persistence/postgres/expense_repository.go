package postgres

import (
	"context"

	"expensetracker/internal/domain/entity"
	"expensetracker/internal/domain/repository"
	"expensetracker/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository backed by PostgreSQL.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) FindByOwnerAndID(ctx context.Context, userID, id int64) (*entity.Expense, error) {
	var m model.ExpenseModel
	err := r.db.WithContext(ctx).
		First(&m, "user_id = ? AND id = ?", userID, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Foreign rows are indistinguishable from absent ones on purpose:
			// a lookup never reveals that another user's expense exists.
			return nil, repository.ErrExpenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find expense")
	}

	return toExpenseEntity(&m), nil
}

func (r *expenseRepository) ListByOwner(ctx context.Context, userID int64, filter repository.ExpenseFilter, offset, limit int) (*repository.ExpensePage, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ?", userID)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if !filter.From.IsZero() {
		query = query.Where("date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("date <= ?", filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count expenses")
	}

	var models []model.ExpenseModel
	err := query.
		Order("date DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	items := make([]*entity.Expense, 0, len(models))
	for i := range models {
		items = append(items, toExpenseEntity(&models[i]))
	}

	return &repository.ExpensePage{Items: items, Total: total}, nil
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	m := toExpenseModel(expense)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "expense references a missing user")
		}

		return errors.Wrap(err, "failed to create expense")
	}

	expense.ID = m.ID
	expense.CreatedAt = m.CreatedAt
	expense.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ? AND id = ?", expense.UserID, expense.ID).
		Updates(map[string]any{
			"title":       expense.Title,
			"category":    expense.Category,
			"amount":      expense.Amount,
			"date":        expense.Date,
			"description": expense.Description,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update expense")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, userID, id int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete expense")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

func toExpenseEntity(m *model.ExpenseModel) *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Category:    m.Category,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toExpenseModel(e *entity.Expense) *model.ExpenseModel {
	return &model.ExpenseModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Title:       e.Title,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
