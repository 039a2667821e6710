// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/spf13/pflag"

// BindFlags registers all configuration flags on fs and returns the config
// the parsed values are written into. Flags left unset keep their zero
// value, so they do not override lower-priority sources when merged.
//
// Flags:
//
//	--db                 database file path
//	--driver             sqlite driver: sqlite3 | sqlite
//	--credential-policy  bcrypt | plaintext
//	--bcrypt-cost        bcrypt work factor
//	--seed-username      seed account login
//	--seed-name          seed account display name
//	--seed-password      seed account password, encoded with the policy
//	-c/--config          json file path with configs
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Storage.DB.Path, "db", "", "Database file path")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "SQLite driver (sqlite3 or sqlite)")
	fs.StringVar(&cfg.App.CredentialPolicy, "credential-policy", "", "Credential policy (bcrypt or plaintext)")
	fs.IntVar(&cfg.App.BcryptCost, "bcrypt-cost", 0, "Bcrypt cost")
	fs.StringVar(&cfg.App.Seed.Username, "seed-username", "", "Seed account login")
	fs.StringVar(&cfg.App.Seed.Name, "seed-name", "", "Seed account display name")
	fs.StringVar(&cfg.App.Seed.Password, "seed-password", "", "Seed account password")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
