package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type pollRepository struct {
	db *gorm.DB
}

func NewPollRepository(db *gorm.DB) ports.PollRepository {
	return &pollRepository{db: db}
}

func orderedOptions(db *gorm.DB) *gorm.DB {
	return db.Order("created_at, position")
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	m := newPollModel(poll)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	var m pollModel
	err := r.db.WithContext(ctx).
		Preload("Options", orderedOptions).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}
	return m.toDomain(), nil
}

func (r *pollRepository) List(ctx context.Context, filter ports.PollFilter) ([]*domain.Poll, error) {
	q := r.db.WithContext(ctx).
		Model(&pollModel{}).
		Preload("Options", orderedOptions).
		Order("created_at DESC, id DESC")

	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if filter.CreatedBy != uuid.Nil {
		q = q.Where("created_by = ?", filter.CreatedBy)
	}
	if filter.Query != "" {
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\'`, containsPattern(strings.ToLower(filter.Query)))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var models []pollModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}

	polls := make([]*domain.Poll, 0, len(models))
	for i := range models {
		polls = append(polls, models[i].toDomain())
	}
	return polls, nil
}

func (r *pollRepository) ListOptions(ctx context.Context, pollID uuid.UUID) ([]domain.PollOption, error) {
	var models []optionModel
	err := orderedOptions(r.db.WithContext(ctx)).
		Where("poll_id = ?", pollID).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}

	options := make([]domain.PollOption, 0, len(models))
	for i := range models {
		options = append(options, models[i].toDomain())
	}
	return options, nil
}

func (r *pollRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern matches text literally anywhere in a column, paired with ESCAPE '\'.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}
