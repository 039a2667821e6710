// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrInvalidUsername = errors.New("username must not contain whitespace")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmptyName       = errors.New("name is required")
	ErrInvalidPostID   = errors.New("invalid post id")
	ErrEmptyImage      = errors.New("image is required")
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyContent    = errors.New("content is required")
	ErrEmptyDate       = errors.New("date is required")
	ErrEmptyAuthor     = errors.New("author is required")
	ErrEmptyMessage    = errors.New("message text is required")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidIP       = errors.New("invalid ip address")
)
