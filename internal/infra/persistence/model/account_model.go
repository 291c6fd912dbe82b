// Package model contains the GORM table mappings of the persistence layer.
package model

import "time"

// AccountModel mirrors the 'accounts' table. The lower-cased email is the
// primary key; rows are never deleted, deactivation flips status.
type AccountModel struct {
	Email        string  `gorm:"type:varchar(255);primaryKey"`
	Role         string  `gorm:"type:varchar(20);not null;index"`
	FirstName    string  `gorm:"type:varchar(100);not null"`
	LastName     string  `gorm:"type:varchar(100);not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Phone        *string `gorm:"type:varchar(50)"`
	Website      *string `gorm:"type:varchar(255)"`
	BusinessName *string `gorm:"type:varchar(255)"`
	Status       string  `gorm:"type:varchar(20);not null;default:active;index"`
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
