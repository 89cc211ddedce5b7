package usecase

import (
	"context"

	authdomain "jarvis-backend/internal/auth/domain"
	authdto "jarvis-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates an email/password account and issues a token.
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// Login authenticates an email/password account.
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// GoogleAuthURL builds the consent screen URL for the OAuth flow.
	GoogleAuthURL(state string) string

	// HandleGoogleCallback exchanges the authorization code, upserts the
	// user, stores the Gmail refresh token and issues a JWT.
	HandleGoogleCallback(ctx context.Context, code string) (*authdto.TokenResponse, error)

	// ValidateToken verifies a JWT and resolves its user.
	ValidateToken(token string) (*authdomain.User, error)
}
