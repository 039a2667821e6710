// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// User represents an administrative account of the portal.
// Rows are stored in the "users" table.
type User struct {
	// ID is the auto-assigned row identifier. It is stable for the
	// lifetime of the row and never exposed via JSON.
	ID int64 `json:"-"`

	// Username is the login name. The schema does not enforce uniqueness,
	// legacy databases may therefore hold several rows with the same value.
	Username string `json:"username"`

	// Password stores the credential as written by the configured
	// credential policy: a bcrypt hash or, under the plaintext policy,
	// the password itself. It must never be exposed via JSON.
	Password string `json:"-"`

	// Name is the display name shown in the admin panel.
	Name string `json:"name"`
}

// Label returns the "name (username)" form used in user listings.
func (u User) Label() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Username)
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
