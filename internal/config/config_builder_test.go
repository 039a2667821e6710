// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies that the defaults alone form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a config without any
// source is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{Path: "first.db"}},
	}, &StructuredConfig{
		Storage: Storage{DB: DB{Path: "second.db"}},
		App:     App{BcryptCost: 10},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "second.db", cfg.Storage.DB.Path)
	assert.Equal(t, DriverMattn, cfg.Storage.DB.Driver)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, DefaultSeedUsername, cfg.App.Seed.Username)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithFlags_NilIsIgnored(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoPathSkips(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags(&StructuredConfig{JSONFilePath: "/does/not/exist.json"}).withJSON()
	require.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies defaults < env < flags < JSON.
func TestGetStructuredConfig_Priority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"bcrypt_cost": 9},
	})

	t.Setenv("STORAGE_DB_PATH", "env.db")
	t.Setenv("APP_BCRYPT_COST", "5")
	t.Setenv("APP_SEED_NAME", "Env Name")

	flags := &StructuredConfig{
		Storage:      Storage{DB: DB{Path: "flags.db"}},
		JSONFilePath: jsonPath,
	}

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "flags.db", cfg.Storage.DB.Path, "flags override env")
	assert.Equal(t, 9, cfg.App.BcryptCost, "json overrides env")
	assert.Equal(t, "Env Name", cfg.App.Seed.Name, "env overrides defaults")
	assert.Equal(t, DefaultSeedUsername, cfg.App.Seed.Username, "defaults fill the rest")
}

func TestGetStructuredConfig_InvalidPolicy(t *testing.T) {
	t.Setenv("APP_CREDENTIAL_POLICY", "md5")

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetStructuredConfig_ParsedFlags(t *testing.T) {
	fs := newTestFlagSet()
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--db", "loaded.db", "--driver", "sqlite"}))

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "loaded.db", cfg.Storage.DB.Path)
	assert.Equal(t, DriverModernc, cfg.Storage.DB.Driver)
}
