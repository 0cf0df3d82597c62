package models

import "time"

// SalesGoal is the monetary target for one calendar month.
// Amounts are stored in cents to avoid float drift.
// At most one goal may exist per (month, year).
type SalesGoal struct {
	ID          uint  `gorm:"primaryKey"`
	Month       int   `gorm:"not null;uniqueIndex:idx_sales_goal_month_year"`
	Year        int   `gorm:"not null;uniqueIndex:idx_sales_goal_month_year"`
	TargetCents int64 `gorm:"not null"`
	CreatedBy   uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UnitGoal is the unit-count target for one calendar month.
// Mirrors SalesGoal with a unit target instead of a monetary one.
type UnitGoal struct {
	ID          uint  `gorm:"primaryKey"`
	Month       int   `gorm:"not null;uniqueIndex:idx_unit_goal_month_year"`
	Year        int   `gorm:"not null;uniqueIndex:idx_unit_goal_month_year"`
	TargetUnits int64 `gorm:"not null"`
	CreatedBy   uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
