package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

const (
	pollsPageSize = 10
	// maxConcurrentCounts bounds the per-poll count queries run by a listing.
	maxConcurrentCounts = 8
)

type pollService struct {
	repo     ports.PollRepository
	voteRepo ports.VoteRepository
	now      func() time.Time
}

func NewPollService(repo ports.PollRepository, voteRepo ports.VoteRepository) ports.PollService {
	return &pollService{
		repo:     repo,
		voteRepo: voteRepo,
		now:      time.Now,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return nil, fmt.Errorf("%w: title must be at most %d characters", domain.ErrValidation, domain.MaxTitleLength)
	}
	if utf8.RuneCountInString(description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description must be at most %d characters", domain.ErrValidation, domain.MaxDescriptionLength)
	}
	if input.CreatedBy == uuid.Nil {
		return nil, fmt.Errorf("%w: poll creator is required", domain.ErrValidation)
	}

	pollID := uuid.New()
	now := s.now().UTC()

	poll := &domain.Poll{
		ID:          pollID,
		Title:       title,
		Description: description,
		CreatedBy:   input.CreatedBy,
		IsActive:    true,
		EndsAt:      input.EndsAt,
		CreatedAt:   now,
	}

	for _, optText := range input.Options {
		optText = strings.TrimSpace(optText)
		if optText == "" {
			continue
		}
		poll.Options = append(poll.Options, domain.PollOption{
			ID:        uuid.New(),
			PollID:    pollID,
			Text:      optText,
			Position:  len(poll.Options),
			CreatedAt: now,
		})
	}

	if len(poll.Options) < domain.MinPollOptions {
		return nil, fmt.Errorf("%w: at least %d options are required", domain.ErrValidation, domain.MinPollOptions)
	}
	if len(poll.Options) > domain.MaxPollOptions {
		return nil, fmt.Errorf("%w: at most %d options are allowed", domain.ErrValidation, domain.MaxPollOptions)
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		slog.Error("failed to create poll", "error", err, "poll_id", pollID)
		return nil, err
	}

	slog.Info("poll created", "poll_id", pollID, "created_by", input.CreatedBy, "options", len(poll.Options))
	return poll, nil
}

func (s *pollService) ListActivePolls(ctx context.Context, input ports.ListPollsInput) ([]*domain.Poll, error) {
	filter := ports.PollFilter{
		ActiveOnly: true,
		Query:      strings.TrimSpace(input.Query),
	}
	if input.Page > math.MaxInt/pollsPageSize {
		return nil, fmt.Errorf("%w: page is out of range", domain.ErrValidation)
	}
	if input.Page > 0 {
		filter.Limit = pollsPageSize
		filter.Offset = (input.Page - 1) * pollsPageSize
	}

	polls, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list active polls: %w", err)
	}

	if err := s.attachTotals(ctx, polls); err != nil {
		return nil, err
	}
	return polls, nil
}

func (s *pollService) ListUserPolls(ctx context.Context, userID uuid.UUID) ([]*domain.Poll, error) {
	polls, err := s.repo.List(ctx, ports.PollFilter{CreatedBy: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list user polls: %w", err)
	}

	if err := s.attachTotals(ctx, polls); err != nil {
		return nil, err
	}
	return polls, nil
}

func (s *pollService) GetPoll(ctx context.Context, id string, voterID *uuid.UUID) (*domain.Poll, error) {
	pollID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidPollID
	}

	poll, err := s.repo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	poll.TotalVotes, err = s.voteRepo.CountByPoll(ctx, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	if voterID != nil {
		vote, err := s.voteRepo.GetByVoter(ctx, pollID, *voterID)
		switch {
		case errors.Is(err, domain.ErrVoteNotFound):
		case err != nil:
			return nil, fmt.Errorf("failed to get user vote: %w", err)
		default:
			poll.UserVote = &vote.OptionID
		}
	}

	return poll, nil
}

func (s *pollService) GetPollOptions(ctx context.Context, id string) ([]domain.PollOption, error) {
	pollID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidPollID
	}

	// An unknown poll and a poll without options must not look the same.
	if _, err := s.repo.GetByID(ctx, pollID); err != nil {
		return nil, err
	}

	return s.repo.ListOptions(ctx, pollID)
}

// attachTotals fills TotalVotes of every poll, one count query per poll.
func (s *pollService) attachTotals(ctx context.Context, polls []*domain.Poll) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCounts)

	for _, poll := range polls {
		poll := poll
		g.Go(func() error {
			total, err := s.voteRepo.CountByPoll(ctx, poll.ID)
			if err != nil {
				return fmt.Errorf("failed to count votes for poll %s: %w", poll.ID, err)
			}
			poll.TotalVotes = total
			return nil
		})
	}

	return g.Wait()
}
