package domain

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

type OptionResult struct {
	OptionID   uuid.UUID `json:"option_id"`
	OptionText string    `json:"option_text"`
	VoteCount  int64     `json:"vote_count"`
	Percentage float64   `json:"percentage"`
}

type PollResults struct {
	PollID     uuid.UUID      `json:"poll_id"`
	TotalVotes int64          `json:"total_votes"`
	Results    []OptionResult `json:"results"`
}

// Tally builds the results of a poll from its options (in display order)
// and the per-option vote counts. Options missing from counts have zero
// votes. Results are ordered by vote count, highest first; equal counts
// keep display order.
func Tally(pollID uuid.UUID, options []PollOption, counts map[uuid.UUID]int64) *PollResults {
	var total int64
	for _, opt := range options {
		total += counts[opt.ID]
	}

	results := make([]OptionResult, 0, len(options))
	for _, opt := range options {
		count := counts[opt.ID]
		results = append(results, OptionResult{
			OptionID:   opt.ID,
			OptionText: opt.Text,
			VoteCount:  count,
			Percentage: Percentage(count, total),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].VoteCount > results[j].VoteCount
	})

	return &PollResults{
		PollID:     pollID,
		TotalVotes: total,
		Results:    results,
	}
}

// Percentage returns count as a share of total, in percent, rounded to two
// decimals. A zero total yields 0.
func Percentage(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(count) / float64(total) * 100
	return math.Round(p*100) / 100
}
