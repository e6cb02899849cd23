package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/data/repository"
	"hotel-management/internal/dto/request"
	"hotel-management/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userCols = []string{"user_id", "username", "password", "created_at"}

func newTestAuthService(t *testing.T) (AuthService, pgxmock.PgxPoolIface) {
	t.Helper()

	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(db.Close)

	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 12}}
	return NewAuthService(repository.NewRepository(db, zap.NewNop()), config, zap.NewNop()), db
}

func TestLogin_IssuesSession(t *testing.T) {
	svc, db := newTestAuthService(t)

	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)

	db.ExpectQuery(q("WHERE username = $1")).
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(1), "admin", hash, time.Now()))
	db.ExpectQuery(q("INSERT INTO sessions")).
		WithArgs(int64(1), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"session_id", "created_at"}).AddRow(int64(10), time.Now()))

	resp, err := svc.Login(context.Background(), &request.LoginRequest{Username: "admin", Password: "admin123"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "admin", resp.Username)
	assert.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), resp.ExpiresAt, time.Minute)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, db := newTestAuthService(t)

	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)

	db.ExpectQuery(q("WHERE username = $1")).
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(1), "admin", hash, time.Now()))

	resp, err := svc.Login(context.Background(), &request.LoginRequest{Username: "admin", Password: "nope"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, db := newTestAuthService(t)

	db.ExpectQuery(q("WHERE username = $1")).
		WillReturnRows(pgxmock.NewRows(userCols))

	_, err := svc.Login(context.Background(), &request.LoginRequest{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestRegister_StoresHash(t *testing.T) {
	svc, db := newTestAuthService(t)

	db.ExpectQuery(q("WHERE username = $1")).
		WithArgs("frontdesk").
		WillReturnRows(pgxmock.NewRows(userCols))
	db.ExpectQuery(q("INSERT INTO users")).
		WithArgs("frontdesk", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "created_at"}).AddRow(int64(3), time.Now()))
	db.ExpectQuery(q("INSERT INTO sessions")).
		WillReturnRows(pgxmock.NewRows([]string{"session_id", "created_at"}).AddRow(int64(11), time.Now()))

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "frontdesk", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.UserID)
	assert.NotEmpty(t, resp.Token)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestRegister_UsernameTakenByConstraint(t *testing.T) {
	svc, db := newTestAuthService(t)

	db.ExpectQuery(q("WHERE username = $1")).
		WillReturnRows(pgxmock.NewRows(userCols))
	db.ExpectQuery(q("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "admin", Password: "secret1"})

	assert.ErrorIs(t, err, entity.ErrUsernameTaken)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestRegister_Validation(t *testing.T) {
	svc, db := newTestAuthService(t)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "ab", Password: "123"})

	assert.ErrorIs(t, err, entity.ErrValidation)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestLogout_RejectsMalformedToken(t *testing.T) {
	svc, db := newTestAuthService(t)

	err := svc.Logout(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, entity.ErrValidation)
	assert.NoError(t, db.ExpectationsWereMet())
}
