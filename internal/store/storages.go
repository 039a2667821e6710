// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/models"
)

// Storages groups the repositories of one open database.
type Storages struct {
	Users         UserRepository
	Announcements PostRepository
	Articles      PostRepository
	Messages      MessageRepository
}

// NewStorages builds every repository over db.
func NewStorages(db *DB, log *logger.Logger) (*Storages, error) {
	announcements, err := NewPostRepository(db, models.Announcements, log)
	if err != nil {
		return nil, err
	}
	articles, err := NewPostRepository(db, models.Articles, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Users:         NewUserRepository(db, log),
		Announcements: announcements,
		Articles:      articles,
		Messages:      NewMessageRepository(db, log),
	}, nil
}

// Posts returns the repository of the given publication table.
func (s *Storages) Posts(kind models.PostKind) (PostRepository, error) {
	switch kind {
	case models.Announcements:
		return s.Announcements, nil
	case models.Articles:
		return s.Articles, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPostKind, kind)
	}
}
