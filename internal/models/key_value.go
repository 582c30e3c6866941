package models

import "time"

// KeyValue is one row of the local key-value table that stands in for the
// browser's local storage.
type KeyValue struct {
	Key       string `gorm:"column:storage_key;primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
