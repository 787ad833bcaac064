package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polling-app/internal/core/domain"
)

type VoteRepository interface {
	// Upsert records vote as the voter's only vote on the poll. An existing
	// vote for (PollID, UserID) gets its option replaced. created reports
	// whether a new row was inserted. vote is updated with the stored row.
	Upsert(ctx context.Context, vote *domain.Vote) (created bool, err error)
	GetByVoter(ctx context.Context, pollID, userID uuid.UUID) (*domain.Vote, error)
	CountByPoll(ctx context.Context, pollID uuid.UUID) (int64, error)
	CountByOption(ctx context.Context, optionID uuid.UUID) (int64, error)
	CountByPollGrouped(ctx context.Context, pollID uuid.UUID) (map[uuid.UUID]int64, error)
}

type VoteInput struct {
	PollID   uuid.UUID
	OptionID uuid.UUID
	UserID   uuid.UUID
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) (vote *domain.Vote, created bool, err error)
	GetUserVote(ctx context.Context, pollID, userID uuid.UUID) (*domain.Vote, error)
}
