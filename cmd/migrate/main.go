// CLI tool to apply or roll back the schema in migrations/.
// Usage: go run ./cmd/migrate [up|down]
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"lg/nutrichef-api/internal/config"
	"lg/nutrichef-api/internal/logger"
)

// findMigrationsDir walks up from the working directory looking for a
// migrations/ folder, so the tool works from the repo root or a subdirectory.
func findMigrationsDir() (string, error) {
	current, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		candidate := filepath.Join(current, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return filepath.Abs(candidate)
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", errors.New("migrations directory not found")
}

func main() {
	logger.Init(false)
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	dir, err := findMigrationsDir()
	if err != nil {
		logger.Fatal("cannot locate migrations", zap.Error(err))
	}

	m, err := migrate.New("file://"+dir, cfg.DBUrl)
	if err != nil {
		logger.Fatal("failed to init migrate", zap.Error(err))
	}
	defer m.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		logger.Fatal("unknown command, expected up or down", zap.String("cmd", cmd))
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal("migration failed", zap.String("cmd", cmd), zap.Error(err))
	}

	version, dirty, _ := m.Version()
	logger.Info("migration complete", zap.String("cmd", cmd), zap.Uint("version", version), zap.Bool("dirty", dirty))
}
