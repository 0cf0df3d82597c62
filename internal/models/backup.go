package models

import "time"

// Backup tracks an encrypted snapshot file written to the backup dir.
type Backup struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	FileName  string `gorm:"size:255;not null"`
	FilePath  string `gorm:"size:512;not null"`
	Size      int64
	CreatedAt time.Time
}
