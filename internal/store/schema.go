// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/migrations"
	"github.com/MKhiriev/go-portal/models"
)

func idColumn() models.Column {
	return models.Column{Name: "id", Type: "INTEGER", PrimaryKey: true}
}

func textColumn(name string, notNull bool) models.Column {
	return models.Column{Name: name, Type: "TEXT", NotNull: notNull}
}

func postTableColumns() []models.Column {
	return []models.Column{
		idColumn(),
		textColumn("image", true),
		textColumn("title", true),
		textColumn("content", true),
		textColumn("date", true),
		textColumn("author", true),
	}
}

// ExpectedSchema is the column layout every table must have, in
// declaration order.
var ExpectedSchema = map[string][]models.Column{
	"users": {
		idColumn(),
		textColumn("username", true),
		textColumn("password", true),
		textColumn("name", true),
	},
	"announcements": postTableColumns(),
	"articles":      postTableColumns(),
	"messages": {
		idColumn(),
		textColumn("name", false),
		textColumn("email", false),
		textColumn("message", false),
		textColumn("ip_address", false),
	},
}

// VerifySchema compares every table against [ExpectedSchema]. The report
// is always returned; the error wraps [ErrSchemaMismatch] when at least one
// table is missing or differs.
func (db *DB) VerifySchema(ctx context.Context) (models.SchemaReport, error) {
	log := logger.FromContext(ctx)

	report := models.SchemaReport{Path: db.path}
	for _, table := range migrations.Tables {
		columns, err := db.tableColumns(ctx, table)
		if err != nil {
			log.Err(err).Str("func", "*DB.VerifySchema").Str("table", table).Msg("failed to read table info")
			return report, err
		}

		tableReport := compareColumns(table, ExpectedSchema[table], columns)
		log.Debug().Str("func", "*DB.VerifySchema").
			Str("table", table).
			Bool("ok", tableReport.OK()).
			Msg("table verified")
		report.Tables = append(report.Tables, tableReport)
	}

	if !report.OK() {
		return report, fmt.Errorf("%w: %s", ErrSchemaMismatch, db.path)
	}

	return report, nil
}

func (db *DB) tableColumns(ctx context.Context, table string) ([]models.Column, error) {
	rows, err := db.QueryContext(ctx, tableColumns, table)
	if err != nil {
		return nil, mapSQLiteError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var (
			column      models.Column
			notNull, pk int
		)
		if err = rows.Scan(&column.Name, &column.Type, &notNull, &pk); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		column.NotNull = notNull != 0
		column.PrimaryKey = pk != 0
		columns = append(columns, column)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return columns, nil
}

// compareColumns reports every difference between want and got. An empty
// got means the table does not exist.
func compareColumns(table string, want, got []models.Column) models.TableReport {
	report := models.TableReport{Table: table, Exists: len(got) > 0}
	if !report.Exists {
		report.Problems = append(report.Problems, "table is missing")
		return report
	}

	actual := make(map[string]models.Column, len(got))
	for _, c := range got {
		actual[c.Name] = c
	}

	for _, w := range want {
		g, ok := actual[w.Name]
		if !ok {
			report.Problems = append(report.Problems, fmt.Sprintf("column %q is missing", w.Name))
			continue
		}
		delete(actual, w.Name)

		if !strings.EqualFold(g.Type, w.Type) {
			report.Problems = append(report.Problems, fmt.Sprintf("column %q has type %q, want %q", w.Name, g.Type, w.Type))
		}
		if g.NotNull != w.NotNull {
			report.Problems = append(report.Problems, fmt.Sprintf("column %q not null is %t, want %t", w.Name, g.NotNull, w.NotNull))
		}
		if g.PrimaryKey != w.PrimaryKey {
			report.Problems = append(report.Problems, fmt.Sprintf("column %q primary key is %t, want %t", w.Name, g.PrimaryKey, w.PrimaryKey))
		}
	}

	for _, c := range got {
		if _, extra := actual[c.Name]; extra {
			report.Problems = append(report.Problems, fmt.Sprintf("unexpected column %q", c.Name))
		}
	}

	return report
}
