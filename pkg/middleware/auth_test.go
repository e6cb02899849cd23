package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-management/internal/data/entity"
	"hotel-management/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockSessionRepo) CleanExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func TestAuthSession(t *testing.T) {
	token := uuid.New()
	session := &entity.Session{ID: 1, UserID: 5, Token: token, ExpiresAt: time.Now().Add(time.Hour)}
	user := &entity.User{ID: 5, Username: "admin"}

	tests := []struct {
		name       string
		header     string
		setup      func(s *mockSessionRepo, u *mockUserRepo)
		wantStatus int
	}{
		{
			name:       "missing header",
			header:     "",
			setup:      func(s *mockSessionRepo, u *mockUserRepo) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic " + token.String(),
			setup:      func(s *mockSessionRepo, u *mockUserRepo) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed token",
			header:     "Bearer abc",
			setup:      func(s *mockSessionRepo, u *mockUserRepo) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "braced token is normalized",
			header: "Bearer {" + token.String() + "}",
			setup: func(s *mockSessionRepo, u *mockUserRepo) {
				s.On("FindValidSession", mock.Anything, token.String()).Return(session, nil)
				u.On("FindByID", mock.Anything, int64(5)).Return(user, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "expired or revoked",
			header: "Bearer " + token.String(),
			setup: func(s *mockSessionRepo, u *mockUserRepo) {
				s.On("FindValidSession", mock.Anything, token.String()).Return(nil, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "store failure",
			header: "Bearer " + token.String(),
			setup: func(s *mockSessionRepo, u *mockUserRepo) {
				s.On("FindValidSession", mock.Anything, token.String()).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "valid session",
			header: "Bearer " + token.String(),
			setup: func(s *mockSessionRepo, u *mockUserRepo) {
				s.On("FindValidSession", mock.Anything, token.String()).Return(session, nil)
				u.On("FindByID", mock.Anything, int64(5)).Return(user, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(mockSessionRepo)
			users := new(mockUserRepo)
			tt.setup(sessions, users)

			var gotUserID int64
			var gotToken string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				gotToken, _ = utils.GetTokenFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthSession(sessions, users, zap.NewNop())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, int64(5), gotUserID)
				assert.Equal(t, token.String(), gotToken)
			}
			sessions.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

func TestRecover(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recover(zap.NewNop())(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
