// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *pflag.FlagSet {
	return pflag.NewFlagSet("test", pflag.ContinueOnError)
}

func TestBindFlags_AllFlags(t *testing.T) {
	fs := newTestFlagSet()
	cfg := BindFlags(fs)

	err := fs.Parse([]string{
		"--db", "data/portal.db",
		"--driver", "sqlite",
		"--credential-policy", "plaintext",
		"--bcrypt-cost", "8",
		"--seed-username", "admin",
		"--seed-name", "Admin",
		"--seed-password", "pw",
		"-c", "/etc/portal.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "data/portal.db", cfg.Storage.DB.Path)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "plaintext", cfg.App.CredentialPolicy)
	assert.Equal(t, 8, cfg.App.BcryptCost)
	assert.Equal(t, "admin", cfg.App.Seed.Username)
	assert.Equal(t, "Admin", cfg.App.Seed.Name)
	assert.Equal(t, "pw", cfg.App.Seed.Password)
	assert.Equal(t, "/etc/portal.json", cfg.JSONFilePath)
}

func TestBindFlags_NoFlagsLeavesZeroValues(t *testing.T) {
	fs := newTestFlagSet()
	cfg := BindFlags(fs)

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBindFlags_ConfigLongForm(t *testing.T) {
	fs := newTestFlagSet()
	cfg := BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--config=portal.json"}))
	assert.Equal(t, "portal.json", cfg.JSONFilePath)
}

func TestBindFlags_InvalidInt(t *testing.T) {
	fs := newTestFlagSet()
	BindFlags(fs)

	assert.Error(t, fs.Parse([]string{"--bcrypt-cost", "high"}))
}
