// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-portal/internal/config"
)

// CredentialHasher turns a password into the value stored in the password
// column and checks a password against a stored value.
type CredentialHasher interface {
	Hash(password string) (string, error)
	// Compare reports whether password matches stored. A mismatch is not
	// an error; an error means stored could not be interpreted.
	Compare(stored, password string) (bool, error)
	Policy() string
}

// NewCredentialHasher returns the hasher of the configured credential
// policy.
func NewCredentialHasher(cfg config.App) (CredentialHasher, error) {
	switch cfg.CredentialPolicy {
	case config.PolicyBcrypt:
		cost := cfg.BcryptCost
		if cost == 0 {
			cost = config.DefaultBcryptCost
		}
		return &bcryptHasher{cost: cost}, nil
	case config.PolicyPlaintext:
		return plaintextHasher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCredentialPolicy, cfg.CredentialPolicy)
	}
}

type bcryptHasher struct {
	cost int
}

func (b *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	return string(hash), nil
}

func (b *bcryptHasher) Compare(stored, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

func (b *bcryptHasher) Policy() string {
	return config.PolicyBcrypt
}

// plaintextHasher stores passwords verbatim.
type plaintextHasher struct{}

func (plaintextHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plaintextHasher) Compare(stored, password string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1, nil
}

func (plaintextHasher) Policy() string {
	return config.PolicyPlaintext
}
