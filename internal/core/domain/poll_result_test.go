package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(texts ...string) []PollOption {
	opts := make([]PollOption, len(texts))
	for i, text := range texts {
		opts[i] = PollOption{ID: uuid.New(), Text: text, Position: i}
	}
	return opts
}

func TestTally(t *testing.T) {
	pollID := uuid.New()

	t.Run("orders by votes and rounds percentages", func(t *testing.T) {
		opts := options("Red", "Green", "Blue")
		counts := map[uuid.UUID]int64{
			opts[0].ID: 1,
			opts[1].ID: 2,
		}

		res := Tally(pollID, opts, counts)

		assert.Equal(t, pollID, res.PollID)
		assert.Equal(t, int64(3), res.TotalVotes)
		require.Len(t, res.Results, 3)

		assert.Equal(t, "Green", res.Results[0].OptionText)
		assert.Equal(t, int64(2), res.Results[0].VoteCount)
		assert.Equal(t, 66.67, res.Results[0].Percentage)

		assert.Equal(t, "Red", res.Results[1].OptionText)
		assert.Equal(t, 33.33, res.Results[1].Percentage)

		assert.Equal(t, "Blue", res.Results[2].OptionText)
		assert.Equal(t, int64(0), res.Results[2].VoteCount)
		assert.Equal(t, 0.0, res.Results[2].Percentage)
	})

	t.Run("no votes keeps display order", func(t *testing.T) {
		opts := options("A", "B", "C")

		res := Tally(pollID, opts, nil)

		assert.Equal(t, int64(0), res.TotalVotes)
		for i, r := range res.Results {
			assert.Equal(t, opts[i].ID, r.OptionID)
			assert.Equal(t, 0.0, r.Percentage)
		}
	})

	t.Run("ties keep display order", func(t *testing.T) {
		opts := options("A", "B", "C", "D")
		counts := map[uuid.UUID]int64{
			opts[1].ID: 2,
			opts[2].ID: 2,
			opts[3].ID: 5,
		}

		res := Tally(pollID, opts, counts)

		got := []string{}
		for _, r := range res.Results {
			got = append(got, r.OptionText)
		}
		assert.Equal(t, []string{"D", "B", "C", "A"}, got)
	})

	t.Run("counts for unknown options are ignored", func(t *testing.T) {
		opts := options("A", "B")
		counts := map[uuid.UUID]int64{
			opts[0].ID:  1,
			uuid.New(): 10,
		}

		res := Tally(pollID, opts, counts)

		assert.Equal(t, int64(1), res.TotalVotes)
		assert.Equal(t, 100.0, res.Results[0].Percentage)
	})
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		total int64
		want  float64
	}{
		{"zero total", 0, 0, 0},
		{"all votes", 4, 4, 100},
		{"one third", 1, 3, 33.33},
		{"two thirds", 2, 3, 66.67},
		{"one seventh", 1, 7, 14.29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.count, tt.total))
		})
	}
}

func TestPollHasOption(t *testing.T) {
	opts := options("Yes", "No")
	poll := &Poll{ID: uuid.New(), Options: opts}

	assert.True(t, poll.HasOption(opts[1].ID))
	assert.False(t, poll.HasOption(uuid.New()))
}
