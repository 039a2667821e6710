// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Credential policies accepted by [App.CredentialPolicy].
const (
	PolicyBcrypt    = "bcrypt"
	PolicyPlaintext = "plaintext"
)

// Drivers accepted by [DB.Driver].
const (
	DriverMattn   = "sqlite3"
	DriverModernc = "sqlite"
)

const (
	// DefaultDBPath is the database file used when none is configured.
	DefaultDBPath = "db/database.db"

	// DefaultBcryptCost matches the cost of the legacy seed hash.
	DefaultBcryptCost = 12

	// DefaultSeedUsername is the login of the seed administrative account.
	DefaultSeedUsername = "root"

	// DefaultSeedName is the display name of the seed administrative account.
	DefaultSeedName = "root"

	// LegacySeedPasswordHash is the bcrypt hash the legacy bootstrap script
	// inserted for the seed account.
	LegacySeedPasswordHash = "$2a$12$emHZ1nzkcNjDE/fKV5Ali.xX8TyU8gMRRKH4j35QIrVz5Eozd1.Fa"
)

// Defaults returns the configuration used when no other source sets a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			CredentialPolicy: PolicyBcrypt,
			BcryptCost:       DefaultBcryptCost,
			Seed: Seed{
				Username:     DefaultSeedUsername,
				Name:         DefaultSeedName,
				PasswordHash: LegacySeedPasswordHash,
			},
		},
		Storage: Storage{
			DB: DB{
				Path:   DefaultDBPath,
				Driver: DriverMattn,
			},
		},
	}
}
