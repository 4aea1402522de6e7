package postgres

import (
	"context"
	"fmt"

	"expensetracker/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager with GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a single database transaction. Repositories obtained
// from the factory share the transactional connection; any error (or panic)
// rolls the whole unit back.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) (err error) {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			err = errors.Errorf("panic in transaction: %v", r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}
	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrap(err, fmt.Sprintf("rollback also failed: %v", rbErr))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) ExpenseRepo() repository.ExpenseRepository {
	return NewExpenseRepository(f.tx)
}
