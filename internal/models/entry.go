package models

import "time"

// SalesEntry is a dated contribution toward a sales goal.
// Dates are kept as YYYY-MM-DD strings, matching how the UI submits
// them and keeping range filters simple lexicographic comparisons.
// One entry exists per (goal, date); saving again replaces the day.
type SalesEntry struct {
	ID          uint   `gorm:"primaryKey"`
	GoalID      uint   `gorm:"index;not null;uniqueIndex:idx_sales_entry_goal_date"`
	Date        string `gorm:"size:10;index;not null;uniqueIndex:idx_sales_entry_goal_date"`
	AmountCents int64  `gorm:"not null"`
	Tickets     int    `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UnitEntry is a dated unit-count contribution toward a unit goal.
type UnitEntry struct {
	ID        uint   `gorm:"primaryKey"`
	GoalID    uint   `gorm:"index;not null;uniqueIndex:idx_unit_entry_goal_date"`
	Date      string `gorm:"size:10;index;not null;uniqueIndex:idx_unit_entry_goal_date"`
	Units     int64  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
