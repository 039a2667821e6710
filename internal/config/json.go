// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk JSON representation of
// [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		CredentialPolicy string `json:"credential_policy"`
		BcryptCost       int    `json:"bcrypt_cost"`
		Seed             struct {
			Username     string `json:"username"`
			Name         string `json:"name"`
			Password     string `json:"password"`
			PasswordHash string `json:"password_hash"`
		} `json:"seed,omitempty"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Path   string `json:"path"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			CredentialPolicy: jsonCfg.App.CredentialPolicy,
			BcryptCost:       jsonCfg.App.BcryptCost,
			Seed: Seed{
				Username:     jsonCfg.App.Seed.Username,
				Name:         jsonCfg.App.Seed.Name,
				Password:     jsonCfg.App.Seed.Password,
				PasswordHash: jsonCfg.App.Seed.PasswordHash,
			},
		},
		Storage: Storage{
			DB: DB{
				Path:   jsonCfg.Storage.DB.Path,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
