// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] is usable.
// All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.Storage.DB.Driver {
	case DriverMattn, DriverModernc:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}

	if cfg.Storage.DB.Path == "" {
		errs = append(errs, fmt.Errorf("%w: empty database path", ErrInvalidStorageConfigs))
	}

	switch cfg.App.CredentialPolicy {
	case PolicyBcrypt:
		if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
			errs = append(errs, fmt.Errorf("%w: bcrypt cost %d out of range [%d, %d]",
				ErrInvalidAppConfigs, cfg.App.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
		}
	case PolicyPlaintext:
		if cfg.App.Seed.Password == "" {
			errs = append(errs, fmt.Errorf("%w: plaintext policy requires a seed password", ErrInvalidAppConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown credential policy %q", ErrInvalidAppConfigs, cfg.App.CredentialPolicy))
	}

	if cfg.App.Seed.Username == "" || cfg.App.Seed.Name == "" {
		errs = append(errs, fmt.Errorf("%w: seed username and name are required", ErrInvalidAppConfigs))
	}

	if cfg.App.Seed.Password == "" && cfg.App.Seed.PasswordHash == "" {
		errs = append(errs, fmt.Errorf("%w: seed password or password hash is required", ErrInvalidAppConfigs))
	}

	return errors.Join(errs...)
}
