package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type resultService struct {
	pollRepo ports.PollRepository
	voteRepo ports.VoteRepository
}

func NewResultService(pollRepo ports.PollRepository, voteRepo ports.VoteRepository) ports.ResultService {
	return &resultService{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
	}
}

func (s *resultService) GetPollResults(ctx context.Context, pollID uuid.UUID) (*domain.PollResults, error) {
	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	counts, err := s.voteRepo.CountByPollGrouped(ctx, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes per option: %w", err)
	}

	return domain.Tally(poll.ID, poll.Options, counts), nil
}

func (s *resultService) GetPollVoteCount(ctx context.Context, pollID uuid.UUID) (int64, error) {
	return s.voteRepo.CountByPoll(ctx, pollID)
}

func (s *resultService) GetOptionVoteCount(ctx context.Context, optionID uuid.UUID) (int64, error) {
	return s.voteRepo.CountByOption(ctx, optionID)
}
