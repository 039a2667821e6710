// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/internal/store"
	"github.com/MKhiriev/go-portal/models"
)

type contentService struct {
	storages *store.Storages
	logger   *logger.Logger
}

// NewContentService constructs a ContentService over the repositories of
// storages. Input is not validated; wrap it with
// [NewContentValidationService] for that.
func NewContentService(storages *store.Storages, logger *logger.Logger) ContentService {
	return &contentService{
		storages: storages,
		logger:   logger,
	}
}

func (c *contentService) ListPosts(ctx context.Context, kind models.PostKind, page, pageSize int) (models.Page[models.Post], error) {
	repo, err := c.storages.Posts(kind)
	if err != nil {
		return models.Page[models.Post]{}, err
	}

	result, err := repo.ListPosts(ctx, page, pageSize)
	if err != nil {
		return models.Page[models.Post]{}, fmt.Errorf("listing %s failed: %w", kind, err)
	}
	return result, nil
}

func (c *contentService) GetPost(ctx context.Context, kind models.PostKind, id int64) (models.Post, error) {
	repo, err := c.storages.Posts(kind)
	if err != nil {
		return models.Post{}, err
	}

	post, err := repo.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("getting %s %d failed: %w", kind, id, err)
	}
	return post, nil
}

func (c *contentService) AddPost(ctx context.Context, kind models.PostKind, post models.Post) (models.Post, error) {
	repo, err := c.storages.Posts(kind)
	if err != nil {
		return models.Post{}, err
	}

	created, err := repo.CreatePost(ctx, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("adding to %s failed: %w", kind, err)
	}

	logger.FromContext(ctx).Info().Str("table", string(kind)).Int64("id", created.ID).Msg("post added")
	return created, nil
}

func (c *contentService) EditPost(ctx context.Context, kind models.PostKind, post models.Post) error {
	repo, err := c.storages.Posts(kind)
	if err != nil {
		return err
	}

	if err = repo.UpdatePost(ctx, post); err != nil {
		return fmt.Errorf("editing %s %d failed: %w", kind, post.ID, err)
	}

	logger.FromContext(ctx).Info().Str("table", string(kind)).Int64("id", post.ID).Msg("post edited")
	return nil
}

func (c *contentService) DeletePost(ctx context.Context, kind models.PostKind, id int64) error {
	repo, err := c.storages.Posts(kind)
	if err != nil {
		return err
	}

	if err = repo.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("deleting %s %d failed: %w", kind, id, err)
	}

	logger.FromContext(ctx).Info().Str("table", string(kind)).Int64("id", id).Msg("post deleted")
	return nil
}

func (c *contentService) AddMessage(ctx context.Context, message models.Message) (models.Message, error) {
	created, err := c.storages.Messages.CreateMessage(ctx, message)
	if err != nil {
		return models.Message{}, fmt.Errorf("storing message failed: %w", err)
	}
	return created, nil
}

func (c *contentService) ListMessages(ctx context.Context) ([]models.Message, error) {
	messages, err := c.storages.Messages.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing messages failed: %w", err)
	}
	return messages, nil
}
