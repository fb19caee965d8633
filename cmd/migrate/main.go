// cmd/migrate/main.go
package main

import (
	"budget-tracker/internal/config"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Использование: migrate [up|down|status]; по умолчанию up.
func main() {
	cfg := config.MustLoad()
	cfg.SetupLogger()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	db, err := sql.Open("pgx", cfg.DBConn)
	if err != nil {
		slog.Error("Не удалось открыть БД", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Миграции ищем относительно рабочей директории
	wd, err := os.Getwd()
	if err != nil {
		slog.Error("Не удалось получить рабочую директорию", "error", err)
		os.Exit(1)
	}
	migrationsDir := filepath.Join(wd, "migrations")

	if err := goose.SetDialect("postgres"); err != nil {
		slog.Error("Неизвестный диалект", "error", err)
		os.Exit(1)
	}

	slog.Info("Применяем миграции", "dir", migrationsDir, "command", command)
	if err := goose.Run(command, db, migrationsDir); err != nil {
		slog.Error("Миграции завершились с ошибкой", "error", err)
		os.Exit(1)
	}

	slog.Info("✅ Миграции применены")
}
