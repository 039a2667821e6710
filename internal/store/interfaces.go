// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists rows of the users table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// EnsureUser inserts user unless a row with the same username exists
	// and reports whether a row was inserted.
	EnsureUser(ctx context.Context, user models.User) (bool, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUsersByUsername(ctx context.Context, username string) ([]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser rewrites name and username of every row matching
	// username, and the password as well when withPassword is true.
	UpdateUser(ctx context.Context, username string, user models.User, withPassword bool) error
	DeleteUser(ctx context.Context, username string) error
}

// PostRepository persists rows of one publication table
// (announcements or articles).
type PostRepository interface {
	ListPosts(ctx context.Context, page, pageSize int) (models.Page[models.Post], error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, id int64) error
}

// MessageRepository persists contact-form submissions.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
	ListMessages(ctx context.Context) ([]models.Message, error)
}
