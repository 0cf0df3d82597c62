package database_test

import (
	"path/filepath"
	"testing"

	"github.com/GBronzi/Reporte-de-ventas/internal/config"
	"github.com/GBronzi/Reporte-de-ventas/internal/database"
	"github.com/GBronzi/Reporte-de-ventas/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestSeedAdminUsesConfiguredCost(t *testing.T) {
	db := newTestDB(t)

	cfg := config.AdminConfig{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: "ChangeMe123",
	}
	require.NoError(t, database.SeedAdmin(db, cfg, 6))

	var admin models.User
	require.NoError(t, db.Where("email = ?", cfg.Email).First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	cost, err := bcrypt.Cost([]byte(admin.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)

	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash), []byte(cfg.Password)))
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	cfg := config.AdminConfig{Email: "admin@example.com", Password: "ChangeMe123"}
	require.NoError(t, database.SeedAdmin(db, cfg, bcrypt.MinCost))
	require.NoError(t, database.SeedAdmin(db, cfg, bcrypt.MinCost))

	var count int64
	require.NoError(t, db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdminSkipsWithoutCredentials(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, database.SeedAdmin(db, config.AdminConfig{}, bcrypt.MinCost))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeedAdminOutOfRangeCostFallsBack(t *testing.T) {
	db := newTestDB(t)

	cfg := config.AdminConfig{Email: "admin@example.com", Password: "ChangeMe123"}
	require.NoError(t, database.SeedAdmin(db, cfg, 0))

	var admin models.User
	require.NoError(t, db.Where("email = ?", cfg.Email).First(&admin).Error)

	cost, err := bcrypt.Cost([]byte(admin.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
