// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// PostKind names one of the two publication tables. Announcements and
// articles share a row shape but are distinct entities stored separately.
type PostKind string

const (
	// Announcements is the "announcements" table.
	Announcements PostKind = "announcements"
	// Articles is the "articles" table.
	Articles PostKind = "articles"
)

// PostKinds lists every known publication table in creation order.
var PostKinds = []PostKind{Announcements, Articles}

// ParsePostKind converts a user-supplied table name into a [PostKind].
func ParsePostKind(s string) (PostKind, error) {
	for _, kind := range PostKinds {
		if string(kind) == s {
			return kind, nil
		}
	}

	return "", fmt.Errorf("unknown post kind %q", s)
}

// Post is a row of either the "announcements" or the "articles" table.
// Every field apart from ID is required by the schema.
type Post struct {
	ID      int64  `json:"id"`
	Image   string `json:"image"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Author  string `json:"author"`
}
