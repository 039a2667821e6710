// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-portal/internal/config"
	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/internal/mock"
	"github.com/MKhiriev/go-portal/internal/store"
	"github.com/MKhiriev/go-portal/models"
)

func newTestAccountService(t *testing.T, policy string) (AccountService, *mock.MockUserRepository, CredentialHasher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	hasher, err := NewCredentialHasher(config.App{CredentialPolicy: policy, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	return NewAccountService(repo, hasher, logger.Nop()), repo, hasher
}

// ─────────────────────────────────────────────
// AddUser
// ─────────────────────────────────────────────

func TestAddUser_HashesWithBcrypt(t *testing.T) {
	ctx := context.Background()
	svc, repo, hasher := newTestAccountService(t, config.PolicyBcrypt)

	gomock.InOrder(
		repo.EXPECT().FindUsersByUsername(ctx, "admin").Return(nil, nil),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user models.User) (models.User, error) {
				assert.NotEqual(t, "secret", user.Password)
				ok, err := hasher.Compare(user.Password, "secret")
				require.NoError(t, err)
				assert.True(t, ok)

				user.ID = 7
				return user, nil
			},
		),
	)

	created, err := svc.AddUser(ctx, models.User{Username: "admin", Password: "secret", Name: "Admin"})
	require.NoError(t, err)
	assert.EqualValues(t, 7, created.ID)
}

func TestAddUser_PlaintextStoresVerbatim(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestAccountService(t, config.PolicyPlaintext)

	repo.EXPECT().FindUsersByUsername(ctx, "admin").Return(nil, nil)
	repo.EXPECT().CreateUser(ctx, models.User{Username: "admin", Password: "secret", Name: "Admin"}).
		Return(models.User{ID: 1, Username: "admin", Password: "secret", Name: "Admin"}, nil)

	_, err := svc.AddUser(ctx, models.User{Username: "admin", Password: "secret", Name: "Admin"})
	require.NoError(t, err)
}

func TestAddUser_InvalidData(t *testing.T) {
	svc, _, _ := newTestAccountService(t, config.PolicyPlaintext)

	_, err := svc.AddUser(context.Background(), models.User{Username: "admin", Name: "Admin"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAddUser_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestAccountService(t, config.PolicyPlaintext)

	repo.EXPECT().FindUsersByUsername(ctx, "root").Return([]models.User{{ID: 1, Username: "root"}}, nil)

	_, err := svc.AddUser(ctx, models.User{Username: "root", Password: "x", Name: "root"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAddUser_RepositoryError(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestAccountService(t, config.PolicyPlaintext)

	repo.EXPECT().FindUsersByUsername(ctx, "admin").Return(nil, nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrDatabaseBusy)

	_, err := svc.AddUser(ctx, models.User{Username: "admin", Password: "x", Name: "Admin"})
	assert.ErrorIs(t, err, store.ErrDatabaseBusy)
}

// ─────────────────────────────────────────────
// EditUser
// ─────────────────────────────────────────────

func TestEditUser_EmptyPasswordKeepsCredential(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestAccountService(t, config.PolicyBcrypt)

	repo.EXPECT().UpdateUser(ctx, "root", models.User{Username: "root", Name: "Administrator"}, false).Return(nil)

	err := svc.EditUser(ctx, "root", models.User{Username: "root", Name: "Administrator"})
	require.NoError(t, err)
}

func TestEditUser_NewPasswordIsHashed(t *testing.T) {
	ctx := context.Background()
	svc, repo, hasher := newTestAccountService(t, config.PolicyBcrypt)

	repo.EXPECT().FindUsersByUsername(ctx, "admin").Return(nil, nil)
	repo.EXPECT().UpdateUser(ctx, "root", gomock.Any(), true).DoAndReturn(
		func(_ context.Context, _ string, user models.User, _ bool) error {
			ok, err := hasher.Compare(user.Password, "new-secret")
			require.NoError(t, err)
			assert.True(t, ok)
			return nil
		},
	)

	err := svc.EditUser(ctx, "root", models.User{Username: "admin", Name: "Admin", Password: "new-secret"})
	require.NoError(t, err)
}

func TestEditUser_RenameToTakenUsername(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestAccountService(t, config.PolicyPlaintext)

	repo.EXPECT().FindUsersByUsername(ctx, "other").Return([]models.User{{ID: 2}}, nil)

	err := svc.EditUser(ctx, "root", models.User{Username: "other", Name: "Other"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestEditUser_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestAccountService(t, config.PolicyPlaintext)

	repo.EXPECT().UpdateUser(ctx, "ghost", gomock.Any(), false).Return(store.ErrUserNotFound)

	err := svc.EditUser(ctx, "ghost", models.User{Username: "ghost", Name: "Ghost"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// DeleteUser / ListUsers / GetUser
// ─────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestAccountService(t, config.PolicyPlaintext)

	repo.EXPECT().DeleteUser(ctx, "root").Return(nil)
	require.NoError(t, svc.DeleteUser(ctx, "root"))

	assert.ErrorIs(t, svc.DeleteUser(ctx, ""), ErrInvalidDataProvided)
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestAccountService(t, config.PolicyPlaintext)

	repo.EXPECT().ListUsers(ctx).Return([]models.User{{Username: "root", Name: "root"}}, nil)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "root (root)", users[0].Label())
}

func TestGetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestAccountService(t, config.PolicyPlaintext)

	repo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAuthenticate_ToleratesDuplicateRows(t *testing.T) {
	ctx := context.Background()
	svc, repo, hasher := newTestAccountService(t, config.PolicyBcrypt)

	oldHash, err := hasher.Hash("old")
	require.NoError(t, err)
	newHash, err := hasher.Hash("new")
	require.NoError(t, err)

	repo.EXPECT().FindUsersByUsername(ctx, "root").Return([]models.User{
		{ID: 1, Username: "root", Password: oldHash},
		{ID: 2, Username: "root", Password: newHash},
	}, nil).Times(2)

	user, err := svc.Authenticate(ctx, "root", "new")
	require.NoError(t, err)
	assert.EqualValues(t, 2, user.ID)

	_, err = svc.Authenticate(ctx, "root", "neither")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthenticate_SkipsRowsOfOtherPolicy(t *testing.T) {
	ctx := context.Background()
	svc, repo, hasher := newTestAccountService(t, config.PolicyBcrypt)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	repo.EXPECT().FindUsersByUsername(ctx, "root").Return([]models.User{
		{ID: 1, Username: "root", Password: "secret"},
		{ID: 2, Username: "root", Password: hash},
	}, nil)

	user, err := svc.Authenticate(ctx, "root", "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 2, user.ID)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestAccountService(t, config.PolicyPlaintext)

	repo.EXPECT().FindUsersByUsername(ctx, "ghost").Return(nil, nil)

	_, err := svc.Authenticate(ctx, "ghost", "x")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthenticate_RepositoryError(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestAccountService(t, config.PolicyPlaintext)

	repoErr := errors.New("boom")
	repo.EXPECT().FindUsersByUsername(ctx, "root").Return(nil, repoErr)

	_, err := svc.Authenticate(ctx, "root", "x")
	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthenticate_EmptyInput(t *testing.T) {
	svc, _, _ := newTestAccountService(t, config.PolicyPlaintext)

	_, err := svc.Authenticate(context.Background(), "", "x")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
