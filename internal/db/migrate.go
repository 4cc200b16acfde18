package db

import (
	"context"
	"database/sql"
	"fmt"

	"emailgenie/internal/db/migrations"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Migrate creates the template and sent-email tables if they are absent.
// Safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB, log *zap.SugaredLogger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{log})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

type gooseLogger struct {
	log *zap.SugaredLogger
}

func (g gooseLogger) Printf(format string, args ...interface{}) {
	g.log.Infof(format, args...)
}

// goose returns the error after Fatalf, so this only logs
func (g gooseLogger) Fatalf(format string, args ...interface{}) {
	g.log.Errorf(format, args...)
}
