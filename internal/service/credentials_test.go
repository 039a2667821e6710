// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-portal/internal/config"
)

func TestNewCredentialHasher(t *testing.T) {
	h, err := NewCredentialHasher(config.App{CredentialPolicy: config.PolicyBcrypt, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	assert.Equal(t, config.PolicyBcrypt, h.Policy())

	h, err = NewCredentialHasher(config.App{CredentialPolicy: config.PolicyPlaintext})
	require.NoError(t, err)
	assert.Equal(t, config.PolicyPlaintext, h.Policy())

	_, err = NewCredentialHasher(config.App{CredentialPolicy: "md5"})
	assert.ErrorIs(t, err, ErrUnknownCredentialPolicy)
}

func TestBcryptHasher(t *testing.T) {
	h, err := NewCredentialHasher(config.App{CredentialPolicy: config.PolicyBcrypt, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	ok, err := h.Compare(hash, "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Compare("not-a-hash", "secret")
	assert.Error(t, err)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	h, err := NewCredentialHasher(config.App{CredentialPolicy: config.PolicyBcrypt})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBcryptCost, h.(*bcryptHasher).cost)
}

func TestBcryptHasher_LegacySeedHashIsBcrypt(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(config.LegacySeedPasswordHash))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBcryptCost, cost)
}

func TestPlaintextHasher(t *testing.T) {
	h := plaintextHasher{}

	stored, err := h.Hash("secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", stored)

	ok, err := h.Compare(stored, "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(stored, "Secret")
	require.NoError(t, err)
	assert.False(t, ok)
}
