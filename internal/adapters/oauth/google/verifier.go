package google

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"

	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type GoogleVerifier struct{}

func NewVerifier() ports.TokenVerifier {
	return &GoogleVerifier{}
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	payload, err := idtoken.Validate(ctx, token, clientID)
	if err != nil {
		return nil, err
	}
	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("email not found in claims")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("email is not verified")
	}
	// Name is optional; accounts without a profile name get an empty one.
	name, _ := payload.Claims["name"].(string)
	return &ports.TokenPayload{Email: email, Name: name}, nil
}
