// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-daily-puzzle/internal/logger"
	"github.com/MKhiriev/go-daily-puzzle/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

// ── UpsertUser ───────────────────────────────────────────────────────────────

func TestUpsertUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, "")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (email,last_signed_in,name,open_id) VALUES ($1,$2,$3,$4) ON CONFLICT (open_id)")).
		WithArgs("ann@example.com", fixedNow, "Ann", "oid-1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertUser(context.Background(), models.UpsertUser{
		OpenID: "oid-1",
		Name:   ptr("Ann"),
		Email:  ptr("ann@example.com"),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUser_OwnerBecomesAdmin(t *testing.T) {
	repo, mock := newTestUserRepo(t, "owner-oid")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (last_signed_in,open_id,role)")).
		WithArgs(fixedNow, "owner-oid", "admin").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.UpsertUser(context.Background(), models.UpsertUser{OpenID: "owner-oid"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUser_OpenIDRequired(t *testing.T) {
	repo, mock := newTestUserRepo(t, "")

	err := repo.UpsertUser(context.Background(), models.UpsertUser{Name: ptr("Ann")})

	assert.ErrorIs(t, err, ErrOpenIDRequired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUser_InvalidRole(t *testing.T) {
	repo, mock := newTestUserRepo(t, "")

	err := repo.UpsertUser(context.Background(), models.UpsertUser{OpenID: "oid-1", Role: ptr(models.Role("root"))})

	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUser_CheckViolationIsInvalidRole(t *testing.T) {
	repo, mock := newTestUserRepo(t, "")

	mock.ExpectExec("INSERT INTO users").WillReturnError(pgError(pgerrcode.CheckViolation))

	err := repo.UpsertUser(context.Background(), models.UpsertUser{OpenID: "oid-1"})

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUpsertUser_QueryErrorIsReturned(t *testing.T) {
	repo, mock := newTestUserRepo(t, "")

	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("db network error"))

	err := repo.UpsertUser(context.Background(), models.UpsertUser{OpenID: "oid-1"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, err.Error(), "db network error")
}

func TestUpsertUser_StoreUnavailableIsSkipped(t *testing.T) {
	repo := NewUserRepository(unavailableClient(), "", logger.Nop())

	err := repo.UpsertUser(context.Background(), models.UpsertUser{OpenID: "oid-1"})

	assert.NoError(t, err)
}

// ── GetUserByOpenID ──────────────────────────────────────────────────────────

func TestGetUserByOpenID_Found(t *testing.T) {
	repo, mock := newTestUserRepo(t, "")

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE open_id = $1 LIMIT 1")).
		WithArgs("oid-1").
		WillReturnRows(userRows().AddRow(1, "oid-1", "Ann", nil, "google", "admin", fixedNow, fixedNow, fixedNow))

	user, err := repo.GetUserByOpenID(context.Background(), "oid-1")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "oid-1", user.OpenID)
	assert.Equal(t, "Ann", *user.Name)
	assert.Nil(t, user.Email)
	assert.Equal(t, "google", *user.LoginMethod)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, fixedNow, user.LastSignedIn)
}

func TestGetUserByOpenID_NotFoundIsAbsent(t *testing.T) {
	repo, mock := newTestUserRepo(t, "")

	mock.ExpectQuery("FROM users").WithArgs("missing").WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByOpenID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUserByOpenID_EmptyResultIsAbsent(t *testing.T) {
	repo, mock := newTestUserRepo(t, "")

	mock.ExpectQuery("FROM users").WithArgs("missing").WillReturnRows(userRows())

	user, err := repo.GetUserByOpenID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUserByOpenID_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t, "")

	mock.ExpectQuery("FROM users").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	user, err := repo.GetUserByOpenID(context.Background(), "oid-1")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetUserByOpenID_StoreUnavailableIsAbsent(t *testing.T) {
	repo := NewUserRepository(unavailableClient(), "", logger.Nop())

	user, err := repo.GetUserByOpenID(context.Background(), "oid-1")

	assert.NoError(t, err)
	assert.Nil(t, user)
}
