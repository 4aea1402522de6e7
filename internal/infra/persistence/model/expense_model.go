package model

import "time"

// ExpenseModel mirrors the 'expenses' table. Every query on it is scoped by
// user_id; the composite index covers the list endpoint's owner+date ordering.
type ExpenseModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;index:idx_expenses_user_date,priority:1"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100)"`
	Amount      int64     `gorm:"not null"`
	Date        time.Time `gorm:"not null;index:idx_expenses_user_date,priority:2"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExpenseModel) TableName() string {
	return "expenses"
}
