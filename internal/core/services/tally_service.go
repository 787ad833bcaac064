package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type tallyService struct {
	pollRepo ports.PollRepository
	results  ports.ResultService
	workers  int
}

func NewTallyService(pollRepo ports.PollRepository, results ports.ResultService, workers int) ports.TallyService {
	if workers <= 0 {
		workers = 1
	}
	return &tallyService{
		pollRepo: pollRepo,
		results:  results,
		workers:  workers,
	}
}

func (s *tallyService) TallyActivePolls(ctx context.Context, emit func(*domain.Poll, *domain.PollResults) error) error {
	polls, err := s.pollRepo.List(ctx, ports.PollFilter{ActiveOnly: true})
	if err != nil {
		return fmt.Errorf("failed to fetch active polls: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, poll := range polls {
		poll := poll
		g.Go(func() error {
			res, err := s.results.GetPollResults(ctx, poll.ID)
			if err != nil {
				return fmt.Errorf("failed to tally poll %s: %w", poll.ID, err)
			}
			poll.TotalVotes = res.TotalVotes
			return emit(poll, res)
		})
	}

	return g.Wait()
}
