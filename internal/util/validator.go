package util

import (
	"fmt"
	"time"
)

// ValidateMonthYear checks the month/year pair the UI may ask about.
func ValidateMonthYear(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month out of range: %d", month)
	}
	if year < 2000 || year > 2100 {
		return fmt.Errorf("year out of range: %d", year)
	}
	return nil
}

// ValidateAmount checks that a monetary amount is positive and sane.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %f", amount)
	}
	if amount >= 1000000000 {
		return fmt.Errorf("amount too large, got %f", amount)
	}
	return nil
}

// ValidateDate checks the YYYY-MM-DD wire format.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// CentsFromAmount converts a decimal amount to integer cents, rounding
// to the nearest cent.
func CentsFromAmount(amount float64) int64 {
	if amount >= 0 {
		return int64(amount*100 + 0.5)
	}
	return int64(amount*100 - 0.5)
}

// AmountFromCents renders cents as a 2-decimal string for the UI.
func AmountFromCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
