// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-portal/internal/config"
	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/migrations"
)

// DB is an open SQLite database. It is owned by a single caller for the
// duration of one command and is never stored at package scope.
type DB struct {
	*sql.DB
	path   string
	driver string
	logger *logger.Logger
}

// WithDB opens the database, passes it to fn and closes it again on every
// exit path, including a failing fn.
//
// A close failure is logged but not returned: statements executed by fn
// are already committed at that point.
func WithDB(ctx context.Context, cfg config.DB, log *logger.Logger, fn func(db *DB) error) error {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "WithDB").Str("path", cfg.Path).Msg("error closing database connection")
			return
		}
		log.Debug().Str("func", "WithDB").Str("path", cfg.Path).Msg("database connection closed")
	}()

	return fn(db)
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, db.logger); err != nil {
		return fmt.Errorf("%w: %w", ErrMigratingSchema, err)
	}

	return nil
}
