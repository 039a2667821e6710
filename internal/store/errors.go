// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no row of the users table matches
	// the requested login name.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPostNotFound is returned when an announcement or article with the
	// requested id does not exist.
	ErrPostNotFound = errors.New("post was not found")

	// ErrRequiredFieldMissing is returned when an INSERT or UPDATE violates
	// a NOT NULL constraint of the schema.
	ErrRequiredFieldMissing = errors.New("required field is missing")

	// ErrInvalidPagination is returned for a page size outside
	// [1, MaxPageSize] or a page whose offset does not fit in an int.
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// ErrUnknownPostKind is returned when a post repository is requested
	// for a table other than announcements or articles.
	ErrUnknownPostKind = errors.New("unknown post kind")

	// ErrDatabaseBusy is returned when another process holds a lock on the
	// database file for longer than the busy timeout.
	ErrDatabaseBusy = errors.New("database is busy")

	// ErrSchemaMismatch is returned by schema verification when a table is
	// missing or its columns differ from the expected layout.
	ErrSchemaMismatch = errors.New("database schema does not match")
)

// Lifecycle errors of the database connection and schema setup.
var (
	// ErrOpeningDB is returned when the database file cannot be created,
	// opened, or pinged.
	ErrOpeningDB = errors.New("error opening database")

	// ErrMigratingSchema is returned when applying the schema fails.
	ErrMigratingSchema = errors.New("error applying database schema")

	// ErrSeedingUser is returned when the seed account cannot be written.
	ErrSeedingUser = errors.New("error seeding user")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values from the
	// result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
