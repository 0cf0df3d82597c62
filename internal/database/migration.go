package database

import (
	"fmt"

	"github.com/GBronzi/Reporte-de-ventas/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or upgrades the schema for all collections and
// their indexes (unique email, composite (month, year) goal keys,
// (goal_id, date) entry keys, credit date/type indexes). Safe to run on
// every startup; existing tables are left alone.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.SalesGoal{},
		&models.SalesEntry{},
		&models.UnitGoal{},
		&models.UnitEntry{},
		&models.Credit{},
		&models.AuditLog{},
		&models.Backup{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
