// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// AuthUserModel mirrors the 'auth_users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AuthUserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex:uq_auth_users_username;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:uq_auth_users_email;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Expenses []ExpenseModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (AuthUserModel) TableName() string {
	return "auth_users"
}
