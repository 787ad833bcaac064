package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) ports.AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error {
	m := &refreshTokenModel{
		ID:        uuid.New(),
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
		Revoked:   token.Revoked,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	token.ID = m.ID
	token.CreatedAt = m.CreatedAt
	return nil
}

// GetRefreshTokenByHash returns nil, nil when no token matches.
func (r *authRepository) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	var m refreshTokenModel
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *authRepository) RevokeRefreshToken(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&refreshTokenModel{}).
		Where("id = ?", id).
		Update("revoked", true).Error
}
