// Command polltally prints the current results of every active poll as
// JSON lines on stdout.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/vncsmyrnk/polling-app/internal/adapters/repository"
	"github.com/vncsmyrnk/polling-app/internal/config"
	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/services"
)

type tallyLine struct {
	PollID     string                `json:"poll_id"`
	Title      string                `json:"title"`
	TotalVotes int64                 `json:"total_votes"`
	Results    []domain.OptionResult `json:"results"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("tally failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("polltally", os.Args[1:])
	if err != nil {
		return err
	}
	slog.SetDefault(cfg.NewLogger())

	// Keep the job from hanging indefinitely.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	repos, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	results := services.NewResultService(repos.Polls, repos.Votes)
	tally := services.NewTallyService(repos.Polls, results, cfg.TallyWorkers)

	slog.Info("starting poll tally", "workers", cfg.TallyWorkers)

	var mu sync.Mutex
	enc := json.NewEncoder(os.Stdout)
	err = tally.TallyActivePolls(ctx, func(poll *domain.Poll, res *domain.PollResults) error {
		mu.Lock()
		defer mu.Unlock()
		return enc.Encode(tallyLine{
			PollID:     poll.ID.String(),
			Title:      poll.Title,
			TotalVotes: res.TotalVotes,
			Results:    res.Results,
		})
	})
	if err != nil {
		return err
	}

	slog.Info("poll tally completed")
	return nil
}
