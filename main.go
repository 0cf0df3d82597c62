package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/GBronzi/Reporte-de-ventas/internal/config"
	"github.com/GBronzi/Reporte-de-ventas/internal/database"
	"github.com/GBronzi/Reporte-de-ventas/internal/logger"
	"github.com/GBronzi/Reporte-de-ventas/internal/router"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(filepath.Dir(cfg.Log.File)); err != nil {
		log.Fatalf("create log dir: %v", err)
	}
	if err := ensureDir(cfg.Backup.Dir); err != nil {
		log.Fatalf("create backup dir: %v", err)
	}

	if err := logger.Init(cfg.Log); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.S.Fatalw("init database", "err", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.S.Fatalw("migrate database", "err", err)
	}

	// first-run administrator account
	if err := database.SeedAdmin(db, cfg.Admin, cfg.Security.BcryptCost); err != nil {
		logger.S.Fatalw("seed admin", "err", err)
	}

	st := store.New(db)
	r := router.SetupRouter(cfg, db, st)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.S.Infow("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.S.Fatalw("run server", "err", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
