// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the operator-facing messages printed by portalctl
// when a command fails.
//
// All Msg* constants are short human-readable strings. [MessageFor] picks
// the one matching an error returned by the service or store layers.
package app

import (
	"errors"

	"github.com/MKhiriev/go-portal/internal/config"
	"github.com/MKhiriev/go-portal/internal/service"
	"github.com/MKhiriev/go-portal/internal/store"
)

const (
	// MsgInvalidConfig is printed when the merged configuration fails
	// validation.
	MsgInvalidConfig = "invalid configuration"

	// MsgInvalidDataProvided is printed when command input fails
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgWrongCredentials is printed when a username/password pair does
	// not match any account.
	MsgWrongCredentials = "invalid username/password"

	// MsgUsernameTaken is printed when an account with the requested
	// username already exists.
	MsgUsernameTaken = "username already exists"

	// MsgUserNotFound is printed when no account has the given username.
	MsgUserNotFound = "user not found"

	// MsgPostNotFound is printed when no announcement or article has the
	// given id.
	MsgPostNotFound = "post not found"

	// MsgUnknownPostKind is printed for a table other than announcements
	// or articles.
	MsgUnknownPostKind = "unknown post kind, use announcements or articles"

	// MsgCannotOpenDatabase is printed when the database file cannot be
	// created or opened.
	MsgCannotOpenDatabase = "cannot open database"

	// MsgSchemaFailed is printed when the schema cannot be applied.
	MsgSchemaFailed = "cannot apply database schema"

	// MsgSeedFailed is printed when the seed account cannot be written.
	MsgSeedFailed = "cannot write seed account"

	// MsgSchemaMismatch is printed when verification finds a missing table
	// or a column that differs from the expected layout.
	MsgSchemaMismatch = "database schema does not match"

	// MsgDatabaseBusy is printed when another process keeps the database
	// locked.
	MsgDatabaseBusy = "database is locked by another process"

	// MsgVersionIsNotSpecified is printed when the binary was built
	// without version information.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgInternalError is printed for every other failure.
	MsgInternalError = "command failed"
)

var messages = []struct {
	err error
	msg string
}{
	{config.ErrInvalidAppConfigs, MsgInvalidConfig},
	{config.ErrInvalidStorageConfigs, MsgInvalidConfig},
	{service.ErrUnknownCredentialPolicy, MsgInvalidConfig},
	{service.ErrWrongCredentials, MsgWrongCredentials},
	{service.ErrUsernameTaken, MsgUsernameTaken},
	{service.ErrVersionIsNotSpecified, MsgVersionIsNotSpecified},
	{service.ErrInvalidDataProvided, MsgInvalidDataProvided},
	{store.ErrUserNotFound, MsgUserNotFound},
	{store.ErrPostNotFound, MsgPostNotFound},
	{store.ErrUnknownPostKind, MsgUnknownPostKind},
	{store.ErrDatabaseBusy, MsgDatabaseBusy},
	{store.ErrRequiredFieldMissing, MsgInvalidDataProvided},
	{store.ErrInvalidPagination, MsgInvalidDataProvided},
	{store.ErrOpeningDB, MsgCannotOpenDatabase},
	{store.ErrSeedingUser, MsgSeedFailed},
	{store.ErrMigratingSchema, MsgSchemaFailed},
	{store.ErrSchemaMismatch, MsgSchemaMismatch},
}

// MessageFor returns the message of the first known sentinel err wraps,
// or [MsgInternalError].
func MessageFor(err error) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return MsgInternalError
}
