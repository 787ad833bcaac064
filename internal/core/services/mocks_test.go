package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type mockPollRepository struct {
	mock.Mock
}

func (m *mockPollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	return m.Called(ctx, poll).Error(0)
}

func (m *mockPollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	args := m.Called(ctx, id)
	poll, _ := args.Get(0).(*domain.Poll)
	return poll, args.Error(1)
}

func (m *mockPollRepository) List(ctx context.Context, filter ports.PollFilter) ([]*domain.Poll, error) {
	args := m.Called(ctx, filter)
	polls, _ := args.Get(0).([]*domain.Poll)
	return polls, args.Error(1)
}

func (m *mockPollRepository) ListOptions(ctx context.Context, pollID uuid.UUID) ([]domain.PollOption, error) {
	args := m.Called(ctx, pollID)
	opts, _ := args.Get(0).([]domain.PollOption)
	return opts, args.Error(1)
}

func (m *mockPollRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockVoteRepository struct {
	mock.Mock
}

func (m *mockVoteRepository) Upsert(ctx context.Context, vote *domain.Vote) (bool, error) {
	args := m.Called(ctx, vote)
	return args.Bool(0), args.Error(1)
}

func (m *mockVoteRepository) GetByVoter(ctx context.Context, pollID, userID uuid.UUID) (*domain.Vote, error) {
	args := m.Called(ctx, pollID, userID)
	vote, _ := args.Get(0).(*domain.Vote)
	return vote, args.Error(1)
}

func (m *mockVoteRepository) CountByPoll(ctx context.Context, pollID uuid.UUID) (int64, error) {
	args := m.Called(ctx, pollID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockVoteRepository) CountByOption(ctx context.Context, optionID uuid.UUID) (int64, error) {
	args := m.Called(ctx, optionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockVoteRepository) CountByPollGrouped(ctx context.Context, pollID uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, pollID)
	counts, _ := args.Get(0).(map[uuid.UUID]int64)
	return counts, args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockAuthRepository struct {
	mock.Mock
}

func (m *mockAuthRepository) StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthRepository) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	token, _ := args.Get(0).(*domain.RefreshToken)
	return token, args.Error(1)
}

func (m *mockAuthRepository) RevokeRefreshToken(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	args := m.Called(ctx, token, clientID)
	payload, _ := args.Get(0).(*ports.TokenPayload)
	return payload, args.Error(1)
}

func newPoll(texts ...string) *domain.Poll {
	poll := &domain.Poll{ID: uuid.New(), Title: "Poll", IsActive: true}
	for i, text := range texts {
		poll.Options = append(poll.Options, domain.PollOption{
			ID:       uuid.New(),
			PollID:   poll.ID,
			Text:     text,
			Position: i,
		})
	}
	return poll
}
