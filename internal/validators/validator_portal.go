// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"net/netip"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-portal/models"
)

// Field name constants used to scope validation.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldName     = "name"

	FieldID      = "id"
	FieldImage   = "image"
	FieldTitle   = "title"
	FieldContent = "content"
	FieldDate    = "date"
	FieldAuthor  = "author"

	FieldMessage   = "message"
	FieldEmail     = "email"
	FieldIPAddress = "ip_address"
)

// PortalValidator implements [Validator] for [models.User], [models.Post]
// and [models.Message], by value or by pointer.
type PortalValidator struct{}

// NewPortalValidator returns a [PortalValidator] as a [Validator].
func NewPortalValidator() Validator {
	return &PortalValidator{}
}

func (v *PortalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Post:
		return v.validatePost(ctx, value, fields...)
	case *models.Post:
		return v.validatePost(ctx, *value, fields...)

	case models.Message:
		return v.validateMessage(ctx, value, fields...)
	case *models.Message:
		return v.validateMessage(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PortalValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" {
				return ErrEmptyUsername
			}
			if strings.IndexFunc(user.Username, unicode.IsSpace) >= 0 {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PortalValidator) validatePost(_ context.Context, post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImage, FieldTitle, FieldContent, FieldDate, FieldAuthor}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if post.ID <= 0 {
				return ErrInvalidPostID
			}
		case FieldImage:
			if post.Image == "" {
				return ErrEmptyImage
			}
		case FieldTitle:
			if strings.TrimSpace(post.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(post.Content) == "" {
				return ErrEmptyContent
			}
		case FieldDate:
			if post.Date == "" {
				return ErrEmptyDate
			}
		case FieldAuthor:
			if strings.TrimSpace(post.Author) == "" {
				return ErrEmptyAuthor
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMessage only checks fields that are present, apart from the
// message text itself. Contact submissions are otherwise free-form.
func (v *PortalValidator) validateMessage(_ context.Context, message models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage, FieldEmail, FieldIPAddress}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(models.StringValue(message.Message)) == "" {
				return ErrEmptyMessage
			}
		case FieldName:
			// optional
		case FieldEmail:
			if message.Email == nil {
				continue
			}
			if _, err := mail.ParseAddress(*message.Email); err != nil {
				return ErrInvalidEmail
			}
		case FieldIPAddress:
			if message.IPAddress == nil {
				continue
			}
			if _, err := netip.ParseAddr(*message.IPAddress); err != nil {
				return ErrInvalidIP
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
