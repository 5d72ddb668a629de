package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard/internal/config"
	"jobboard/internal/http-api/dto"
	"jobboard/internal/http-api/models"
	"jobboard/internal/http-api/repository"
	"jobboard/internal/middleware/auth"
)

func init() {
	auth.Cost = bcrypt.MinCost
}

func newTestAuthService(userRepo *MockUserRepository) AuthService {
	cfg := &config.Config{SecretKey: "test-secret", SessionTTL: time.Hour}
	return NewAuthService(userRepo, repository.NewMemoryDenylist(), cfg)
}

func hashedUser(t *testing.T, id int64, username, password string) *models.User {
	t.Helper()
	hash, err := auth.Hash(password)
	require.NoError(t, err)
	return &models.User{ID: id, Username: username, Password: hash}
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	svc := newTestAuthService(mockUserRepo)

	mockUserRepo.On("FindByUsername", ctx, "alice").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register(ctx, dto.CredentialsForm{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret", user.Password)
	assert.True(t, auth.Check(user.Password, "secret"))
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		form    dto.CredentialsForm
		setup   func(m *MockUserRepository)
		message string
	}{
		{
			name:    "missing username",
			form:    dto.CredentialsForm{Password: "secret"},
			message: "Username is required.",
		},
		{
			name:    "missing password",
			form:    dto.CredentialsForm{Username: "alice"},
			message: "Password is required.",
		},
		{
			name: "taken",
			form: dto.CredentialsForm{Username: "alice", Password: "secret"},
			setup: func(m *MockUserRepository) {
				m.On("FindByUsername", ctx, "alice").Return(&models.User{ID: 1, Username: "alice"}, nil)
			},
			message: "User alice is already registered.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			if tt.setup != nil {
				tt.setup(mockUserRepo)
			}
			svc := newTestAuthService(mockUserRepo)

			_, err := svc.Register(ctx, tt.form)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)
			mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	alice := hashedUser(t, 1, "alice", "secret")

	t.Run("success", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByUsername", ctx, "alice").Return(alice, nil)
		mockUserRepo.On("FindByID", ctx, int64(1)).Return(alice, nil)
		svc := newTestAuthService(mockUserRepo)

		token, user, err := svc.Login(ctx, dto.CredentialsForm{Username: "alice", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, alice, user)

		current, claims, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, alice, current)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByUsername", ctx, "carol").Return(nil, gorm.ErrRecordNotFound)
		svc := newTestAuthService(mockUserRepo)

		_, _, err := svc.Login(ctx, dto.CredentialsForm{Username: "carol", Password: "secret"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Incorrect username.", verr.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByUsername", ctx, "alice").Return(alice, nil)
		svc := newTestAuthService(mockUserRepo)

		_, _, err := svc.Login(ctx, dto.CredentialsForm{Username: "alice", Password: "nope"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Incorrect password.", verr.Message)
	})

	t.Run("database error", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		dbErr := errors.New("database is locked")
		mockUserRepo.On("FindByUsername", ctx, "alice").Return(nil, dbErr)
		svc := newTestAuthService(mockUserRepo)

		_, _, err := svc.Login(ctx, dto.CredentialsForm{Username: "alice", Password: "secret"})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestValidateToken_Rejects(t *testing.T) {
	ctx := context.Background()
	alice := &models.User{ID: 1, Username: "alice"}

	t.Run("garbage", func(t *testing.T) {
		svc := newTestAuthService(new(MockUserRepository))
		_, err := svc.ValidateToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{UserID: 1})
		signed, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		svc := newTestAuthService(new(MockUserRepository))
		_, err = svc.ValidateToken(ctx, signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		svc := newTestAuthService(new(MockUserRepository))
		impl := svc.(*authService)
		impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := impl.generateToken(alice)
		require.NoError(t, err)
		impl.now = time.Now

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("logged out", func(t *testing.T) {
		svc := newTestAuthService(new(MockUserRepository))
		token, err := svc.(*authService).generateToken(alice)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(ctx, token)
		require.NoError(t, err)
		require.NoError(t, svc.Logout(ctx, claims))

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("deleted user", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByID", ctx, int64(1)).Return(nil, gorm.ErrRecordNotFound)
		svc := newTestAuthService(mockUserRepo)
		token, err := svc.(*authService).generateToken(alice)
		require.NoError(t, err)

		_, _, err = svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestLogout_WithoutClaims(t *testing.T) {
	svc := newTestAuthService(new(MockUserRepository))
	assert.NoError(t, svc.Logout(context.Background(), nil))
}
