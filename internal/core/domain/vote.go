package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a voter's current choice on a poll. There is at most one per
// (PollID, UserID); changing the choice rewrites OptionID in place.
type Vote struct {
	ID        uuid.UUID `json:"id"`
	PollID    uuid.UUID `json:"poll_id"`
	OptionID  uuid.UUID `json:"option_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
