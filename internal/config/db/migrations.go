package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // регистрация драйвера Postgres
	_ "github.com/golang-migrate/migrate/v4/source/file"       // регистрация файлового источника
	_ "github.com/lib/pq"                                      // регистрация драйвера Postgres для миграций
	"go.uber.org/zap"
)

// RunMigrations применяет миграции базы данных из migrationsPath (например, file://./migrations).
func RunMigrations(migrationsPath, dsn string, log *zap.Logger) error {
	m, err := migrate.New(migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			log.Warn("failed to close migrator", zap.Error(err))
		}
	}()

	log.Info("applying migrations", zap.String("source", migrationsPath))

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no new migrations to apply, database is up-to-date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	log.Info("migrations applied successfully")
	return nil
}
