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

// upsertAttempts covers one lost race against another process writing the
// same file: the unique index rejects the second insert, and the retry
// finds the row and updates it.
const upsertAttempts = 2

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) ports.VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Upsert(ctx context.Context, vote *domain.Vote) (bool, error) {
	var (
		created bool
		err     error
	)
	for attempt := 0; attempt < upsertAttempts; attempt++ {
		created, err = r.upsertOnce(ctx, vote)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if err != nil {
		return false, fmt.Errorf("failed to save vote: %w", err)
	}
	return created, nil
}

func (r *voteRepository) upsertOnce(ctx context.Context, vote *domain.Vote) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing voteModel
		err := tx.Where("poll_id = ? AND user_id = ?", vote.PollID, vote.UserID).Take(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(newVoteModel(vote)).Error
		}
		if err != nil {
			return err
		}

		err = tx.Model(&existing).Updates(map[string]any{
			"option_id":  vote.OptionID,
			"updated_at": vote.UpdatedAt,
		}).Error
		if err != nil {
			return err
		}
		vote.ID = existing.ID
		vote.CreatedAt = existing.CreatedAt
		return nil
	})
	return created, err
}

func (r *voteRepository) GetByVoter(ctx context.Context, pollID, userID uuid.UUID) (*domain.Vote, error) {
	var m voteModel
	err := r.db.WithContext(ctx).
		Where("poll_id = ? AND user_id = ?", pollID, userID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return m.toDomain(), nil
}

func (r *voteRepository) CountByPoll(ctx context.Context, pollID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&voteModel{}).Where("poll_id = ?", pollID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count poll votes: %w", err)
	}
	return count, nil
}

func (r *voteRepository) CountByOption(ctx context.Context, optionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&voteModel{}).Where("option_id = ?", optionID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count option votes: %w", err)
	}
	return count, nil
}

func (r *voteRepository) CountByPollGrouped(ctx context.Context, pollID uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []struct {
		OptionID uuid.UUID
		Count    int64
	}
	err := r.db.WithContext(ctx).
		Model(&voteModel{}).
		Select("option_id, COUNT(*) AS count").
		Where("poll_id = ?", pollID).
		Group("option_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vote counts: %w", err)
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.OptionID] = row.Count
	}
	return counts, nil
}
