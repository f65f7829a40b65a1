// Command migrate applies or rolls back the embedded schema migrations.
//
//	migrate up     apply all pending migrations
//	migrate down   roll back every migration
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"health-reports/internal/config"
	"health-reports/internal/database"
	"health-reports/internal/logging"
)

var (
	loadConfig = config.LoadMigrate
	migrateUp  = database.RunMigrations
	migrateDn  = database.RollbackAll
	exitFunc   = os.Exit
)

func run(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: migrate up|down")
	}
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	log := logging.New("health-reports-migrate", cfg.LogLevel)

	switch args[0] {
	case "up":
		if err := migrateUp(cfg.DatabaseURL); err != nil {
			return err
		}
	case "down":
		if err := migrateDn(cfg.DatabaseURL); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown command %q, want up or down", args[0])
	}
	log.Info("migrations done", "direction", args[0])
	return nil
}

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		slog.Error("migrate failed", "error", err)
		exitFunc(1)
	}
}
