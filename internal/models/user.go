package models

import "time"

// User roles. Admins manage users, goal targets and destructive
// operations; plain users record entries and read reports.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an application user.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:128;uniqueIndex;not null"`
	Name         string `gorm:"size:64"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:16;not null;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may perform administrative actions.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
