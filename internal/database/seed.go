package database

import (
	"fmt"

	"github.com/GBronzi/Reporte-de-ventas/internal/config"
	"github.com/GBronzi/Reporte-de-ventas/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the configured administrator account if no admin
// exists yet. Without at least one admin nobody could manage users or
// goal targets, so this runs on every startup and is a no-op once an
// admin is present.
func SeedAdmin(db *gorm.DB, cfg config.AdminConfig, bcryptCost int) error {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		Email:        cfg.Email,
		Name:         cfg.Name,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
