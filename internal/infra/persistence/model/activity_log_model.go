package model

import "time"

// ActivityLogModel mirrors the 'activity_logs' table. The table is
// append-only; there are no update paths in the repository.
type ActivityLogModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Email       string    `gorm:"type:varchar(255);not null;index"`
	Activity    string    `gorm:"type:varchar(50);not null"`
	Description string    `gorm:"type:text"`
	OccurredAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
