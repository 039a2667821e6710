// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/go-portal/internal/config"
	"github.com/MKhiriev/go-portal/internal/logger"
)

// busyTimeoutMillis is how long a statement waits on a lock held by another
// process before failing with SQLITE_BUSY.
const busyTimeoutMillis = 5000

// NewConnectSQLite opens (or creates) the database file described by cfg.
// Missing parent directories and the file itself are created first.
//
// The connection is verified with a ping; every failure is logged and
// returned wrapped in [ErrOpeningDB].
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", cfg.Path).Msg("error creating database file")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDB, err)
	}

	conn, err := sql.Open(cfg.Driver, dataSourceName(cfg))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("driver", cfg.Driver).Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDB, err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningDB, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", cfg.Path).Str("driver", cfg.Driver).
		Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:     conn,
		path:   cfg.Path,
		driver: cfg.Driver,
		logger: log,
	}

	return db, nil
}

// dataSourceName builds the driver DSN. Both drivers strip the query part
// of a plain path and understand their own pragma parameters.
func dataSourceName(cfg config.DB) string {
	switch cfg.Driver {
	case config.DriverModernc:
		return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", cfg.Path, busyTimeoutMillis)
	default:
		return fmt.Sprintf("%s?_busy_timeout=%d", cfg.Path, busyTimeoutMillis)
	}
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
