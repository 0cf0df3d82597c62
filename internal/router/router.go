package router

import (
	"github.com/GBronzi/Reporte-de-ventas/internal/config"
	"github.com/GBronzi/Reporte-de-ventas/internal/handler"
	"github.com/GBronzi/Reporte-de-ventas/internal/middleware"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the API routes and middleware chain.
func SetupRouter(cfg *config.Config, db *gorm.DB, st *store.Store) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret

	authHandler := handler.NewAuthHandler(st, jwtSecret, cfg.JWT.Issuer, cfg.JWT.ExpireHours)
	api.POST("/auth/login",
		middleware.RateLimit(cfg.Security.LoginRatePerMinute),
		authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.Auth(jwtSecret, st),
		middleware.Audit(db),
	)

	protected.GET("/me", handler.GetMe)
	protected.POST("/profile", handler.UpdateProfile(st))
	protected.POST("/profile/password", handler.ChangePassword(st, cfg.Security.BcryptCost))

	goalHandler := handler.NewGoalHandler(st)
	protected.GET("/goals/sales", goalHandler.GetSales)
	protected.POST("/goals/sales/entries", goalHandler.SaveSalesEntry)
	protected.DELETE("/goals/sales/entries", goalHandler.DeleteSalesEntry)
	protected.GET("/goals/units", goalHandler.GetUnits)
	protected.POST("/goals/units/entries", goalHandler.SaveUnitEntry)
	protected.DELETE("/goals/units/entries", goalHandler.DeleteUnitEntry)

	creditHandler := handler.NewCreditHandler(st)
	protected.GET("/credits", creditHandler.ListByMonth)
	protected.POST("/credits", creditHandler.Create)
	protected.PUT("/credits/:id", creditHandler.Update)
	protected.DELETE("/credits/:id", creditHandler.Delete)

	exportHandler := handler.NewExportHandler(st)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	// administrator surface
	admin := protected.Group("")
	admin.Use(middleware.RequireAdmin())

	admin.POST("/goals/sales", goalHandler.SaveSales)
	admin.DELETE("/goals/sales/:id/entries", goalHandler.ClearSalesEntries)
	admin.POST("/goals/units", goalHandler.SaveUnits)
	admin.DELETE("/goals/units/:id/entries", goalHandler.ClearUnitEntries)

	admin.DELETE("/credits", creditHandler.DeleteByDate)
	admin.DELETE("/credits/month", creditHandler.DeleteByMonth)

	userHandler := handler.NewUserHandler(st, cfg.Security.BcryptCost)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id/role", userHandler.ChangeRole)
	admin.PUT("/users/:id/password", userHandler.ResetPassword)
	admin.DELETE("/users/:id", userHandler.Delete)

	backupHandler := handler.NewBackupHandler(st, cfg.Security.EncryptionKey, cfg.Backup.Dir)
	admin.POST("/backups", backupHandler.CreateBackup)
	admin.GET("/backups", backupHandler.ListBackups)
	admin.GET("/backups/:id/download", backupHandler.DownloadBackup)
	admin.POST("/backups/:id/restore", backupHandler.RestoreBackup)
	admin.DELETE("/backups/:id", backupHandler.DeleteBackup)

	auditHandler := handler.NewAuditHandler(st)
	admin.GET("/logs", auditHandler.ListLogs)

	admin.POST("/reset", handler.ResetData(st))

	return r
}
