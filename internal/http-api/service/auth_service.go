package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/config"
	"jobboard/internal/http-api/dto"
	"jobboard/internal/http-api/models"
	"jobboard/internal/http-api/repository"
	"jobboard/internal/middleware/auth"
)

// SessionClaims is the payload of the session cookie.
type SessionClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, form dto.CredentialsForm) (*models.User, error)
	Login(ctx context.Context, form dto.CredentialsForm) (token string, user *models.User, err error)
	ValidateToken(ctx context.Context, tokenString string) (*SessionClaims, error)
	Authenticate(ctx context.Context, tokenString string) (*models.User, *SessionClaims, error)
	Logout(ctx context.Context, claims *SessionClaims) error
}

type authService struct {
	userRepo   repository.UserRepository
	denylist   repository.TokenDenylist
	jwtSecret  []byte
	sessionTTL time.Duration
	now        func() time.Time
}

func NewAuthService(
	userRepo repository.UserRepository,
	denylist repository.TokenDenylist,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		denylist:   denylist,
		jwtSecret:  []byte(cfg.SecretKey),
		sessionTTL: cfg.SessionTTL,
		now:        time.Now,
	}
}

// Register creates an account with a bcrypt-hashed password.
func (s *authService) Register(ctx context.Context, form dto.CredentialsForm) (*models.User, error) {
	if form.Username == "" {
		return nil, invalid("username", "Username is required.")
	}
	if form.Password == "" {
		return nil, invalid("password", "Password is required.")
	}

	_, err := s.userRepo.FindByUsername(ctx, form.Username)
	switch {
	case err == nil:
		return nil, invalid("username", fmt.Sprintf("User %s is already registered.", form.Username))
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hashedPassword, err := auth.Hash(form.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, invalid("password", "Password is too long.")
	}
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: form.Username,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks the credentials and issues a signed session token.
func (s *authService) Login(ctx context.Context, form dto.CredentialsForm) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, form.Username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, err
		}
		auth.CheckMissing(form.Password)
		return "", nil, invalid("username", "Incorrect username.")
	}

	if !auth.Check(user.Password, form.Password) {
		return "", nil, invalid("password", "Incorrect password.")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := s.now()
	claims := SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken verifies signature and expiry and rejects logged-out tokens.
func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate resolves a session token to its user. A token whose user no
// longer exists is invalid.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*models.User, *SessionClaims, error) {
	claims, err := s.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidToken
		}
		return nil, nil, err
	}
	return user, claims, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *authService) Logout(ctx context.Context, claims *SessionClaims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	return s.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}
