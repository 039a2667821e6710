// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-portal/models"
)

// AccountService manages administrative accounts. Passwords passed in are
// always clear text; the credential policy decides what is stored.
type AccountService interface {
	AddUser(ctx context.Context, user models.User) (models.User, error)
	// EditUser rewrites the account identified by username. An empty
	// user.Password keeps the stored credential.
	EditUser(ctx context.Context, username string, user models.User) error
	DeleteUser(ctx context.Context, username string) error
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

// ContentService manages announcements, articles and contact messages.
type ContentService interface {
	ListPosts(ctx context.Context, kind models.PostKind, page, pageSize int) (models.Page[models.Post], error)
	GetPost(ctx context.Context, kind models.PostKind, id int64) (models.Post, error)
	AddPost(ctx context.Context, kind models.PostKind, post models.Post) (models.Post, error)
	EditPost(ctx context.Context, kind models.PostKind, post models.Post) error
	DeletePost(ctx context.Context, kind models.PostKind, id int64) error

	AddMessage(ctx context.Context, message models.Message) (models.Message, error)
	ListMessages(ctx context.Context) ([]models.Message, error)
}

// ContentServiceWrapper defines middleware composition for ContentService.
// Implementations wrap an existing ContentService to add behavior such as
// validation.
type ContentServiceWrapper interface {
	Wrap(ContentService) ContentService
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
