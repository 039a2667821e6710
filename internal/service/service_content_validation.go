// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portal/internal/store"
	"github.com/MKhiriev/go-portal/internal/validators"
	"github.com/MKhiriev/go-portal/models"
)

// ContentValidationService validates input before delegating to the
// wrapped ContentService.
type ContentValidationService struct {
	inner     ContentService
	validator validators.Validator
}

func NewContentValidationService() ContentServiceWrapper {
	return &ContentValidationService{
		validator: validators.NewPortalValidator(),
	}
}

func (v *ContentValidationService) ListPosts(ctx context.Context, kind models.PostKind, page, pageSize int) (models.Page[models.Post], error) {
	if pageSize < 1 || pageSize > store.MaxPageSize {
		return models.Page[models.Post]{}, fmt.Errorf("%w: page size must be between 1 and %d", ErrInvalidDataProvided, store.MaxPageSize)
	}
	return v.inner.ListPosts(ctx, kind, page, pageSize)
}

func (v *ContentValidationService) GetPost(ctx context.Context, kind models.PostKind, id int64) (models.Post, error) {
	if err := v.validator.Validate(ctx, models.Post{ID: id}, validators.FieldID); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.GetPost(ctx, kind, id)
}

func (v *ContentValidationService) AddPost(ctx context.Context, kind models.PostKind, post models.Post) (models.Post, error) {
	if err := v.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddPost(ctx, kind, post)
}

func (v *ContentValidationService) EditPost(ctx context.Context, kind models.PostKind, post models.Post) error {
	fields := []string{
		validators.FieldID,
		validators.FieldImage,
		validators.FieldTitle,
		validators.FieldContent,
		validators.FieldDate,
		validators.FieldAuthor,
	}
	if err := v.validator.Validate(ctx, post, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.EditPost(ctx, kind, post)
}

func (v *ContentValidationService) DeletePost(ctx context.Context, kind models.PostKind, id int64) error {
	if err := v.validator.Validate(ctx, models.Post{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.DeletePost(ctx, kind, id)
}

func (v *ContentValidationService) AddMessage(ctx context.Context, message models.Message) (models.Message, error) {
	if err := v.validator.Validate(ctx, message); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddMessage(ctx, message)
}

func (v *ContentValidationService) ListMessages(ctx context.Context) ([]models.Message, error) {
	return v.inner.ListMessages(ctx)
}

func (v *ContentValidationService) Wrap(wrapped ContentService) ContentService {
	v.inner = wrapped
	return v
}
