// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InitReport summarizes one run of the schema initializer.
type InitReport struct {
	// Path is the database file the run operated on.
	Path string `json:"path"`

	// Tables lists the tables ensured by the run.
	Tables []string `json:"tables"`

	// SeedInserted is true when the seed account was written by this run
	// and false when an account with the same login already existed.
	SeedInserted bool `json:"seed_inserted"`

	// RunID identifies the command run that produced the report.
	RunID string `json:"run_id,omitempty"`
}

// Column describes one column as reported by SQLite's table_info pragma.
type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NotNull    bool   `json:"not_null"`
	PrimaryKey bool   `json:"primary_key"`
}

// TableReport is the verification outcome for a single table.
type TableReport struct {
	Table    string   `json:"table"`
	Exists   bool     `json:"exists"`
	Problems []string `json:"problems,omitempty"`
}

// OK reports whether the table exists and matches its column contract.
func (t TableReport) OK() bool {
	return t.Exists && len(t.Problems) == 0
}

// SchemaReport aggregates [TableReport] values for every expected table.
type SchemaReport struct {
	Path   string        `json:"path"`
	Tables []TableReport `json:"tables"`
}

// OK reports whether every table in the report is valid.
func (s SchemaReport) OK() bool {
	for _, t := range s.Tables {
		if !t.OK() {
			return false
		}
	}
	return true
}
