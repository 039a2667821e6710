// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation, lookup and maintenance against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// that every statement is traced together with the run id of the command.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the assigned ID.
//
// Error handling:
//   - NOT NULL violation (empty username, password or name) → [ErrRequiredFieldMissing].
//   - Locked database file → [ErrDatabaseBusy].
//   - Any other driver-level error → [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error inserting user")
		return models.User{}, mapSQLiteError(err, ErrExecutingStatement)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error reading inserted id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	user.ID = id

	return user, nil
}

// EnsureUser inserts user only when no row with the same username exists.
// An existing row is never modified. The returned flag is true when a row
// was written by this call.
func (r *userRepository) EnsureUser(ctx context.Context, user models.User) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, ensureUser,
		requiredText(user.Username), requiredText(user.Password), requiredText(user.Name), user.Username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.EnsureUser").Str("username", user.Username).Msg("error inserting user")
		return false, mapSQLiteError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.EnsureUser").Msg("error reading affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*userRepository.EnsureUser").
		Str("username", user.Username).
		Bool("inserted", affected > 0).
		Msg("user ensured")

	return affected > 0, nil
}

// FindUserByUsername returns the oldest row whose username matches.
// [ErrUserNotFound] is returned when there is none.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	users, err := r.FindUsersByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, ErrUserNotFound
	}

	return users[0], nil
}

// FindUsersByUsername returns every row whose username matches, oldest
// first. Legacy databases may contain duplicates; an empty slice means no
// match.
func (r *userRepository) FindUsersByUsername(ctx context.Context, username string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := findUsersByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByUsername").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "*userRepository.FindUsersByUsername", query, args...)
}

// ListUsers returns every account ordered by id.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := listUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "*userRepository.ListUsers", query, args...)
}

// UpdateUser rewrites every row matching username. The password column is
// only touched when withPassword is true.
// [ErrUserNotFound] is returned when no row matched.
func (r *userRepository) UpdateUser(ctx context.Context, username string, user models.User, withPassword bool) error {
	log := logger.FromContext(ctx)

	query, args, err := updateUserQuery(username, user, withPassword)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffecting(ctx, "*userRepository.UpdateUser", username, query, args...)
}

// DeleteUser removes every row matching username.
// [ErrUserNotFound] is returned when no row matched.
func (r *userRepository) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteUserQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffecting(ctx, "*userRepository.DeleteUser", username, query, args...)
}

func (r *userRepository) execAffecting(ctx context.Context, funcName, username, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("username", username).Msg("error executing statement")
		return mapSQLiteError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) queryUsers(ctx context.Context, funcName, query string, args ...any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, mapSQLiteError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	users := make([]models.User, 0, 4)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Username, &user.Password, &user.Name); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
