// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the portal schema and applies it with goose.
//
// Every statement in the embedded migrations is written with
// "IF NOT EXISTS", so a database produced by the legacy bootstrap script
// (tables present, no goose bookkeeping) migrates without error.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Tables lists the tables created by the embedded migrations, in order.
var Tables = []string{"users", "announcements", "articles", "messages"}

// Migrate applies all pending migrations to db using the sqlite3 dialect.
// Goose output is forwarded to log at debug level.
func Migrate(ctx context.Context, db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}
	if log == nil {
		log = logger.Nop()
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger adapts *logger.Logger to goose.Logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug().Str("component", "goose").Msgf(format, v...)
}

// Fatalf logs at error level instead of exiting; goose reports the
// failure through its returned error as well.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("component", "goose").Msgf(format, v...)
}
