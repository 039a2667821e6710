// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-portal/internal/config"
	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/internal/store"
	"github.com/MKhiriev/go-portal/internal/utils"
	"github.com/MKhiriev/go-portal/migrations"
	"github.com/MKhiriev/go-portal/models"
)

// Initializer creates the portal schema and the seed administrative
// account. Every call opens the database, does its work and closes the
// database again.
type Initializer struct {
	db     config.DB
	seed   config.Seed
	hasher CredentialHasher
	logger *logger.Logger
}

// NewInitializer constructs an Initializer from cfg.
func NewInitializer(cfg *config.StructuredConfig, logger *logger.Logger) (*Initializer, error) {
	hasher, err := NewCredentialHasher(cfg.App)
	if err != nil {
		return nil, err
	}

	return &Initializer{
		db:     cfg.Storage.DB,
		seed:   cfg.App.Seed,
		hasher: hasher,
		logger: logger,
	}, nil
}

// SeedUser returns the seed account row. A configured seed password is
// encoded with the credential policy; otherwise the configured hash is
// stored verbatim.
func (i *Initializer) SeedUser() (models.User, error) {
	user := models.User{
		Username: i.seed.Username,
		Name:     i.seed.Name,
		Password: i.seed.PasswordHash,
	}

	if i.seed.Password != "" {
		hash, err := i.hasher.Hash(i.seed.Password)
		if err != nil {
			return models.User{}, err
		}
		user.Password = hash
	}

	if user.Username == "" || user.Name == "" || user.Password == "" {
		return models.User{}, fmt.Errorf("%w: incomplete seed account", ErrInvalidDataProvided)
	}

	return user, nil
}

// Run applies the schema and inserts the seed account unless an account
// with the same username exists. Running it any number of times leaves
// exactly one seed row.
func (i *Initializer) Run(ctx context.Context) (models.InitReport, error) {
	log := logger.FromContext(ctx)

	seed, err := i.SeedUser()
	if err != nil {
		return models.InitReport{}, err
	}

	report := models.InitReport{Path: i.db.Path}
	report.RunID, _ = utils.GetRunIDFromContext(ctx)
	err = store.WithDB(ctx, i.db, i.logger, func(db *store.DB) error {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		report.Tables = append(report.Tables, migrations.Tables...)

		inserted, err := store.NewUserRepository(db, i.logger).EnsureUser(ctx, seed)
		if err != nil {
			return fmt.Errorf("%w: %w", store.ErrSeedingUser, err)
		}
		report.SeedInserted = inserted

		return nil
	})
	if err != nil {
		log.Err(err).Str("path", i.db.Path).Msg("database initialization failed")
		return models.InitReport{}, err
	}

	log.Info().
		Str("path", report.Path).
		Strs("tables", report.Tables).
		Bool("seed_inserted", report.SeedInserted).
		Str("seed_username", seed.Username).
		Msg("database initialized")

	return report, nil
}

// Verify checks the schema of an existing database. A missing database
// file is reported as a mismatch and is not created.
func (i *Initializer) Verify(ctx context.Context) (models.SchemaReport, error) {
	if _, err := os.Stat(i.db.Path); errors.Is(err, fs.ErrNotExist) {
		report := models.SchemaReport{Path: i.db.Path}
		for _, table := range migrations.Tables {
			report.Tables = append(report.Tables, models.TableReport{
				Table:    table,
				Problems: []string{"database file is missing"},
			})
		}
		return report, fmt.Errorf("%w: %s does not exist", store.ErrSchemaMismatch, i.db.Path)
	}

	var report models.SchemaReport
	err := store.WithDB(ctx, i.db, i.logger, func(db *store.DB) error {
		var verifyErr error
		report, verifyErr = db.VerifySchema(ctx)
		return verifyErr
	})

	return report, err
}
