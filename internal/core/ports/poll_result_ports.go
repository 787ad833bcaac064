package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polling-app/internal/core/domain"
)

type ResultService interface {
	GetPollResults(ctx context.Context, pollID uuid.UUID) (*domain.PollResults, error)
	GetPollVoteCount(ctx context.Context, pollID uuid.UUID) (int64, error)
	GetOptionVoteCount(ctx context.Context, optionID uuid.UUID) (int64, error)
}

type TallyService interface {
	// TallyActivePolls computes results for every active poll and hands each
	// one to emit. emit may be called from several goroutines.
	TallyActivePolls(ctx context.Context, emit func(*domain.Poll, *domain.PollResults) error) error
}
