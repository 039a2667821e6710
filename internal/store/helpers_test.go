// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-portal/internal/config"
	"github.com/MKhiriev/go-portal/internal/logger"
)

var testDrivers = []string{config.DriverMattn, config.DriverModernc}

// newMigratedDB opens a fresh database file in a temporary directory and
// applies the schema.
func newMigratedDB(t *testing.T, driver string) *DB {
	t.Helper()

	cfg := config.DB{
		Path:   filepath.Join(t.TempDir(), "db", "database.db"),
		Driver: driver,
	}

	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, path: "mock.db", driver: config.DriverMattn, logger: logger.Nop()}, mock
}
