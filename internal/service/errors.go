// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong username or password")
	ErrUsernameTaken       = errors.New("username is already taken")

	ErrUnknownCredentialPolicy = errors.New("unknown credential policy")
	ErrHashingPassword         = errors.New("error hashing password")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
