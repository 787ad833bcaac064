package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type voteService struct {
	pollRepo ports.PollRepository
	voteRepo ports.VoteRepository
}

func NewVoteService(pollRepo ports.PollRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
	}
}

func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Vote, bool, error) {
	if input.UserID == uuid.Nil {
		return nil, false, fmt.Errorf("%w: voter is required", domain.ErrValidation)
	}

	poll, err := s.pollRepo.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, false, err
	}

	if !poll.HasOption(input.OptionID) {
		return nil, false, domain.ErrInvalidOption
	}

	now := time.Now().UTC()
	vote := &domain.Vote{
		ID:        uuid.New(),
		PollID:    input.PollID,
		OptionID:  input.OptionID,
		UserID:    input.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.voteRepo.Upsert(ctx, vote)
	if err != nil {
		slog.Error("failed to record vote", "error", err, "poll_id", input.PollID, "user_id", input.UserID)
		return nil, false, err
	}

	slog.Info("vote recorded", "poll_id", vote.PollID, "option_id", vote.OptionID, "user_id", vote.UserID, "created", created)
	return vote, created, nil
}

func (s *voteService) GetUserVote(ctx context.Context, pollID, userID uuid.UUID) (*domain.Vote, error) {
	return s.voteRepo.GetByVoter(ctx, pollID, userID)
}
