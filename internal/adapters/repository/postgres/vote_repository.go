package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Upsert relies on the (poll_id, user_id) unique constraint, so concurrent
// first votes by the same voter collapse into one row. xmax is zero only
// for a freshly inserted tuple.
func (r *voteRepository) Upsert(ctx context.Context, vote *domain.Vote) (bool, error) {
	query := `
		INSERT INTO votes (id, poll_id, option_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (poll_id, user_id) DO UPDATE
		SET option_id = EXCLUDED.option_id,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`
	var inserted bool
	err := r.db.QueryRowContext(ctx, query,
		vote.ID, vote.PollID, vote.OptionID, vote.UserID, vote.CreatedAt, vote.UpdatedAt,
	).Scan(&vote.ID, &vote.CreatedAt, &vote.UpdatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("failed to save vote: %w", err)
	}
	return inserted, nil
}

func (r *voteRepository) GetByVoter(ctx context.Context, pollID, userID uuid.UUID) (*domain.Vote, error) {
	query := `
		SELECT id, poll_id, option_id, user_id, created_at, updated_at
		FROM votes
		WHERE poll_id = $1 AND user_id = $2
	`
	var vote domain.Vote
	err := r.db.QueryRowContext(ctx, query, pollID, userID).Scan(
		&vote.ID, &vote.PollID, &vote.OptionID, &vote.UserID, &vote.CreatedAt, &vote.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return &vote, nil
}

func (r *voteRepository) CountByPoll(ctx context.Context, pollID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE poll_id = $1`, pollID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count poll votes: %w", err)
	}
	return count, nil
}

func (r *voteRepository) CountByOption(ctx context.Context, optionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE option_id = $1`, optionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count option votes: %w", err)
	}
	return count, nil
}

func (r *voteRepository) CountByPollGrouped(ctx context.Context, pollID uuid.UUID) (map[uuid.UUID]int64, error) {
	query := `
		SELECT option_id, COUNT(*)
		FROM votes
		WHERE poll_id = $1
		GROUP BY option_id
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vote counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int64)
	for rows.Next() {
		var optionID uuid.UUID
		var count int64
		if err := rows.Scan(&optionID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[optionID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vote counts: %w", err)
	}

	return counts, nil
}
