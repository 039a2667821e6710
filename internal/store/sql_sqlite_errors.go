// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	sqlitelib "modernc.org/sqlite/lib"
)

// ErrorClassification is the result of [SQLiteErrorClassifier.Classify].
type ErrorClassification int

const (
	// Unclassified covers every error without a dedicated mapping.
	Unclassified ErrorClassification = iota

	// NotNullViolation is a NOT NULL constraint failure.
	NotNullViolation

	// Busy means the database file is locked by another connection.
	Busy
)

// SQLiteErrorClassifier inspects errors of both supported drivers
// (mattn/go-sqlite3 and modernc.org/sqlite) and maps them to an
// [ErrorClassification].
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// codedError is implemented by modernc.org/sqlite's *Error.
type codedError interface {
	error
	Code() int
}

// Classify returns the classification of err. A nil error or an error of an
// unknown driver is [Unclassified].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var mattnErr sqlite3.Error
	if errors.As(err, &mattnErr) {
		switch {
		case mattnErr.ExtendedCode == sqlite3.ErrConstraintNotNull:
			return NotNullViolation
		case mattnErr.Code == sqlite3.ErrBusy, mattnErr.Code == sqlite3.ErrLocked:
			return Busy
		}
		return Unclassified
	}

	var moderncErr codedError
	if errors.As(err, &moderncErr) {
		code := moderncErr.Code()
		primary := code & 0xff
		switch {
		case code == sqlitelib.SQLITE_CONSTRAINT_NOTNULL:
			return NotNullViolation
		case primary == sqlitelib.SQLITE_CONSTRAINT && strings.Contains(moderncErr.Error(), "NOT NULL constraint failed"):
			return NotNullViolation
		case primary == sqlitelib.SQLITE_BUSY, primary == sqlitelib.SQLITE_LOCKED:
			return Busy
		}
	}

	return Unclassified
}

// mapSQLiteError wraps err with the store sentinel matching its
// classification. Unclassified errors are wrapped with fallback.
func mapSQLiteError(err error, fallback error) error {
	switch NewSQLiteErrorClassifier().Classify(err) {
	case NotNullViolation:
		return fmt.Errorf("%w: %w", ErrRequiredFieldMissing, err)
	case Busy:
		return fmt.Errorf("%w: %w", ErrDatabaseBusy, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}
