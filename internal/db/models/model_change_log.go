package models

import (
	"time"

	"gorm.io/datatypes"
)

// ModelChangeLog is an append-only audit entry describing a change to one row.
type ModelChangeLog struct {
	// ID is the unique identifier for the entry.
	ID uint `gorm:"primaryKey" json:"id"`
	// Table is the name of the table the changed row lives in.
	Table string `gorm:"column:table_name;size:132;not null;index:idx_changelog_subject" json:"table_name"`
	// TableRow is the primary key of the changed row.
	TableRow uint `gorm:"column:table_row;not null;index:idx_changelog_subject" json:"table_row"`
	// Data is the serialized state of the row.
	Data datatypes.JSON `gorm:"column:data;not null" json:"data"`
	// Action is what happened to the row (for example saved or deleted).
	Action string `gorm:"size:16;not null" json:"action"`
	// Timestamp is when the change happened.
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

// TableName specifies the database table name for the ModelChangeLog model.
func (ModelChangeLog) TableName() string {
	return "model_change_logs"
}
