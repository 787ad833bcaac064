package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

func TestVoteService_Vote(t *testing.T) {
	ctx := context.Background()
	voter := uuid.New()

	t.Run("records a first vote", func(t *testing.T) {
		p := newPoll("Yes", "No")
		polls := new(mockPollRepository)
		votes := new(mockVoteRepository)
		polls.On("GetByID", ctx, p.ID).Return(p, nil)
		votes.On("Upsert", ctx, mock.MatchedBy(func(v *domain.Vote) bool {
			return v.PollID == p.ID && v.OptionID == p.Options[0].ID && v.UserID == voter
		})).Return(true, nil)
		svc := NewVoteService(polls, votes)

		vote, created, err := svc.Vote(ctx, ports.VoteInput{PollID: p.ID, OptionID: p.Options[0].ID, UserID: voter})
		require.NoError(t, err)

		assert.True(t, created)
		assert.Equal(t, p.Options[0].ID, vote.OptionID)
		votes.AssertExpectations(t)
	})

	t.Run("changing a vote is not a new vote", func(t *testing.T) {
		p := newPoll("Yes", "No")
		polls := new(mockPollRepository)
		votes := new(mockVoteRepository)
		polls.On("GetByID", ctx, p.ID).Return(p, nil)
		votes.On("Upsert", ctx, mock.Anything).Return(false, nil)
		svc := NewVoteService(polls, votes)

		_, created, err := svc.Vote(ctx, ports.VoteInput{PollID: p.ID, OptionID: p.Options[1].ID, UserID: voter})
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("option of another poll", func(t *testing.T) {
		p, other := newPoll("Yes", "No"), newPoll("Up", "Down")
		polls := new(mockPollRepository)
		votes := new(mockVoteRepository)
		polls.On("GetByID", ctx, p.ID).Return(p, nil)
		svc := NewVoteService(polls, votes)

		_, _, err := svc.Vote(ctx, ports.VoteInput{PollID: p.ID, OptionID: other.Options[0].ID, UserID: voter})
		assert.ErrorIs(t, err, domain.ErrInvalidOption)
		votes.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("unknown poll", func(t *testing.T) {
		id := uuid.New()
		polls := new(mockPollRepository)
		polls.On("GetByID", ctx, id).Return(nil, domain.ErrPollNotFound)
		svc := NewVoteService(polls, new(mockVoteRepository))

		_, _, err := svc.Vote(ctx, ports.VoteInput{PollID: id, OptionID: uuid.New(), UserID: voter})
		assert.ErrorIs(t, err, domain.ErrPollNotFound)
	})

	t.Run("anonymous voter", func(t *testing.T) {
		svc := NewVoteService(new(mockPollRepository), new(mockVoteRepository))

		_, _, err := svc.Vote(ctx, ports.VoteInput{PollID: uuid.New(), OptionID: uuid.New()})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestVoteService_GetUserVote(t *testing.T) {
	ctx := context.Background()
	pollID, voter := uuid.New(), uuid.New()

	votes := new(mockVoteRepository)
	votes.On("GetByVoter", ctx, pollID, voter).Return(nil, domain.ErrVoteNotFound)
	svc := NewVoteService(new(mockPollRepository), votes)

	_, err := svc.GetUserVote(ctx, pollID, voter)
	assert.ErrorIs(t, err, domain.ErrVoteNotFound)
}
