package models

import "time"

// Credit transaction types.
const (
	CreditTypeNew       = "new"
	CreditTypeRenewal   = "renewal"
	CreditTypeCollected = "collected"
)

// Credit represents a single credit transaction. Credits carry no
// foreign key; monthly views filter them transiently by date range.
type Credit struct {
	ID          uint   `gorm:"primaryKey"`
	Date        string `gorm:"size:10;index;not null"`
	Type        string `gorm:"size:16;index;not null"`
	AmountCents int64  `gorm:"not null"`
	Client      string `gorm:"size:128"`
	Quantity    int    `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidCreditType reports whether t is one of the known credit types.
func ValidCreditType(t string) bool {
	switch t {
	case CreditTypeNew, CreditTypeRenewal, CreditTypeCollected:
		return true
	}
	return false
}
