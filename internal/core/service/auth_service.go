package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/secuaas/NetSentinel/internal/core/domain"
	"github.com/secuaas/NetSentinel/internal/core/port"
)

// ErrInvalidCredentials is returned for any failed login attempt. The cause
// (unknown user, wrong password, disabled account) is deliberately not
// distinguished to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthServiceImpl authenticates users against the store and issues signed
// bearer tokens.
type AuthServiceImpl struct {
	users       port.UserRepository
	secret      []byte
	tokenExpiry time.Duration
}

func NewAuthService(users port.UserRepository, secret string, tokenExpiry time.Duration) port.AuthService {
	return &AuthServiceImpl{
		users:       users,
		secret:      []byte(secret),
		tokenExpiry: tokenExpiry,
	}
}

// Login authenticates a user and generates a signed JWT.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the stamp is best-effort bookkeeping.
		log.Printf("Failed to update last_login for %s: %v", user.Username, err)
	}

	return &domain.LoginResponse{Token: token, User: *user}, nil
}

// ValidateToken verifies a bearer token's signature and expiry and returns
// its claims.
func (s *AuthServiceImpl) ValidateToken(token string) (*domain.TokenClaims, error) {
	claims := &domain.TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

func (s *AuthServiceImpl) GetUser(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *AuthServiceImpl) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := domain.TokenClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
