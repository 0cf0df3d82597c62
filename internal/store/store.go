// Package store is the persistence layer of the dashboard. It wraps a
// GORM SQLite handle and exposes typed CRUD with the uniqueness
// contracts the rest of the application relies on: one goal per
// (month, year), one entry per (goal, date), unique user emails.
//
// A Store is explicitly constructed and injected into handlers; there
// is no package-level connection.
package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Store provides access to all persisted collections.
type Store struct {
	db *gorm.DB
}

// New wraps an open database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DateFormat is the canonical wire format for entry and credit dates.
const DateFormat = "2006-01-02"

// MonthRange returns the first and last calendar day of (month, year)
// as YYYY-MM-DD strings. time.Date normalizes day 0 of the next month
// to the last day of this one, so leap years come out right.
func MonthRange(month, year int) (first, last string) {
	f := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	l := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return f.Format(DateFormat), l.Format(DateFormat)
}

// validMonthYear mirrors the bounds the UI is allowed to ask about.
func validMonthYear(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000 && year <= 2100
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
