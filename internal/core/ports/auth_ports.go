package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polling-app/internal/core/domain"
)

type AuthRepository interface {
	StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id uuid.UUID) error
}

type TokenPayload struct {
	Email string
	Name  string
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string, clientID string) (*TokenPayload, error)
}

type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, string, error)       // returns access_token, refresh_token, error
	LoginWithGoogle(ctx context.Context, googleToken string) (string, string, error)  // returns access_token, refresh_token, error
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error)
	SignOut(ctx context.Context, refreshToken string) error
	Authenticate(accessToken string) (uuid.UUID, error)
}
