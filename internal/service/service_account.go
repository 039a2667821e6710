// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/internal/store"
	"github.com/MKhiriev/go-portal/internal/validators"
	"github.com/MKhiriev/go-portal/models"
)

// accountService is the concrete implementation of AccountService.
type accountService struct {
	// userRepository is the data-access layer for the users table.
	userRepository store.UserRepository

	// hasher applies the configured credential policy.
	hasher CredentialHasher

	validator validators.Validator
	logger    *logger.Logger
}

// NewAccountService constructs an AccountService over userRepository that
// stores credentials as produced by hasher.
func NewAccountService(userRepository store.UserRepository, hasher CredentialHasher, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewPortalValidator(),
		logger:         logger,
	}
}

// AddUser creates a new account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - ErrUsernameTaken if an account with the same username exists.
//   - A wrapped storage error if the repository call fails.
func (a *accountService) AddUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	existing, err := a.userRepository.FindUsersByUsername(ctx, user.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}
	if len(existing) > 0 {
		return models.User{}, fmt.Errorf("%w: %s", ErrUsernameTaken, user.Username)
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, err
	}
	user.Password = hash

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("username", created.Username).Str("policy", a.hasher.Policy()).Msg("user created")
	return created, nil
}

// EditUser updates name, username and, when a new password is given, the
// credential of every row matching username.
func (a *accountService) EditUser(ctx context.Context, username string, user models.User) error {
	log := logger.FromContext(ctx)

	withPassword := user.Password != ""
	fields := []string{validators.FieldUsername, validators.FieldName}
	if username == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyUsername)
	}
	if err := a.validator.Validate(ctx, user, fields...); err != nil {
		log.Error().Err(err).Str("username", username).Msg("invalid user data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if user.Username != username {
		taken, err := a.userRepository.FindUsersByUsername(ctx, user.Username)
		if err != nil {
			return fmt.Errorf("user search by username failed: %w", err)
		}
		if len(taken) > 0 {
			return fmt.Errorf("%w: %s", ErrUsernameTaken, user.Username)
		}
	}

	if withPassword {
		hash, err := a.hasher.Hash(user.Password)
		if err != nil {
			return err
		}
		user.Password = hash
	}

	if err := a.userRepository.UpdateUser(ctx, username, user, withPassword); err != nil {
		log.Err(err).Str("username", username).Msg("user update ended with error")
		return fmt.Errorf("user update ended with error: %w", err)
	}

	log.Info().Str("username", username).Str("new_username", user.Username).Bool("password_changed", withPassword).Msg("user updated")
	return nil
}

func (a *accountService) DeleteUser(ctx context.Context, username string) error {
	if username == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyUsername)
	}

	if err := a.userRepository.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("username", username).Msg("user deleted")
	return nil
}

func (a *accountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}
	return users, nil
}

func (a *accountService) GetUser(ctx context.Context, username string) (models.User, error) {
	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}
	return user, nil
}

// Authenticate checks password against every row with the given username
// and returns the first row it matches. Legacy databases may hold
// duplicate rows.
//
// Unknown usernames and wrong passwords both yield ErrWrongCredentials.
func (a *accountService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	candidates, err := a.userRepository.FindUsersByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	var compareErrs []error
	for _, candidate := range candidates {
		ok, compareErr := a.hasher.Compare(candidate.Password, password)
		if compareErr != nil {
			// a row written under another policy
			compareErrs = append(compareErrs, compareErr)
			continue
		}
		if ok {
			return candidate, nil
		}
	}

	log.Warn().
		Str("username", username).
		Int("candidates", len(candidates)).
		AnErr("compare_error", errors.Join(compareErrs...)).
		Msg("wrong credentials")
	return models.User{}, ErrWrongCredentials
}
