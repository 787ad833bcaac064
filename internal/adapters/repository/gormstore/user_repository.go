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

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) ports.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	m := &userModel{
		ID:           uuid.New(),
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	return nil
}

func (r *userRepository) getOne(ctx context.Context, cond string, arg any) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where(cond, arg).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return m.toDomain(), nil
}
