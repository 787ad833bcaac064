package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MinPollOptions       = 2
	MaxPollOptions       = 10
)

type Poll struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	CreatedBy   uuid.UUID    `json:"created_by"`
	IsActive    bool         `json:"is_active"`
	EndsAt      *time.Time   `json:"ends_at,omitempty"`
	Options     []PollOption `json:"options"`
	TotalVotes  int64        `json:"total_votes"`
	// UserVote is the option chosen by the requesting voter, if any.
	UserVote  *uuid.UUID `json:"user_vote,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type PollOption struct {
	ID        uuid.UUID `json:"id"`
	PollID    uuid.UUID `json:"poll_id"`
	Text      string    `json:"option_text"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// HasOption reports whether optionID is one of the poll's options.
func (p *Poll) HasOption(optionID uuid.UUID) bool {
	for _, opt := range p.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}
