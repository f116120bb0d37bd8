package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/secuaas/NetSentinel/internal/core/domain"
)

// UserRepository handles persistence of authentication principals.
type UserRepository interface {
	// FindByUsername retrieves a user by unique username.
	// Returns domain.ErrNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindByID retrieves a user by identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Create inserts a new user. PasswordHash is expected to hold the
	// bcrypt hash already. Returns domain.ErrConflict on a duplicate
	// username.
	Create(ctx context.Context, user *domain.User) error

	// UpdateLastLogin stamps the user's last_login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// AuthService authenticates callers and issues bearer tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed token plus the
	// user record.
	Login(ctx context.Context, username, password string) (*domain.LoginResponse, error)

	// ValidateToken parses and verifies a bearer token, returning its
	// claims.
	ValidateToken(token string) (*domain.TokenClaims, error)

	// GetUser resolves the user behind a validated set of claims.
	GetUser(ctx context.Context, username string) (*domain.User, error)
}
