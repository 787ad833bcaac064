package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polling-app/internal/core/domain"
)

// PollFilter narrows PollRepository.List. Zero values mean "no filter";
// a zero Limit returns every matching poll.
type PollFilter struct {
	ActiveOnly bool
	CreatedBy  uuid.UUID
	Query      string
	Limit      int
	Offset     int
}

type PollRepository interface {
	// Save stores the poll and its options atomically.
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	List(ctx context.Context, filter PollFilter) ([]*domain.Poll, error)
	ListOptions(ctx context.Context, pollID uuid.UUID) ([]domain.PollOption, error)
	Ping(ctx context.Context) error
}

type CreatePollInput struct {
	Title       string
	Description string
	CreatedBy   uuid.UUID
	Options     []string
	EndsAt      *time.Time
}

type ListPollsInput struct {
	Page  int
	Query string
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	ListActivePolls(ctx context.Context, input ListPollsInput) ([]*domain.Poll, error)
	ListUserPolls(ctx context.Context, userID uuid.UUID) ([]*domain.Poll, error)
	GetPoll(ctx context.Context, id string, voterID *uuid.UUID) (*domain.Poll, error)
	GetPollOptions(ctx context.Context, id string) ([]domain.PollOption, error)
}
