// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for portalctl.
// It aggregates all sub-configurations and is populated by merging values
// from built-in defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds account-level settings: the credential policy and the
	// seed administrative account.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings that control how credentials are stored and which
// account the initializer seeds.
type App struct {
	// CredentialPolicy selects how passwords are written to the users
	// table: "bcrypt" (one-way salted hash) or "plaintext".
	// Env: APP_CREDENTIAL_POLICY
	CredentialPolicy string `env:"CREDENTIAL_POLICY"`

	// BcryptCost is the bcrypt work factor used under the bcrypt policy.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Seed describes the administrative account inserted by the initializer.
	Seed Seed `envPrefix:"SEED_"`
}

// Seed describes the seed administrative account.
type Seed struct {
	// Username is the seed login name.
	// Env: APP_SEED_USERNAME
	Username string `env:"USERNAME"`

	// Name is the seed display name.
	// Env: APP_SEED_NAME
	Name string `env:"NAME"`

	// Password, when set, is encoded with the credential policy before it
	// is stored. It takes precedence over PasswordHash.
	// Env: APP_SEED_PASSWORD
	Password string `env:"PASSWORD"`

	// PasswordHash is stored verbatim when Password is empty. The default
	// is the bcrypt hash shipped with the legacy bootstrap script.
	// Env: APP_SEED_PASSWORD_HASH
	PasswordHash string `env:"PASSWORD_HASH"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds settings for the file-backed SQLite database.
type DB struct {
	// Path is the database file. Missing parent directories are created.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`

	// Driver selects the database/sql driver: "sqlite3" (mattn/go-sqlite3)
	// or "sqlite" (modernc.org/sqlite).
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (values bound by [BindFlags])
//  4. JSON file (path resolved from sources 2 and 3)
//
// flags may be nil when no command line is involved.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
