package gormstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
)

type userModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"not null;uniqueIndex"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type refreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"not null"`
	CreatedAt time.Time
}

func (refreshTokenModel) TableName() string { return "refresh_tokens" }

type pollModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"size:500;not null"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive    bool      `gorm:"not null;index:idx_polls_active_created_at,priority:1"`
	EndsAt      *time.Time
	CreatedAt   time.Time     `gorm:"index:idx_polls_active_created_at,priority:2"`
	Options     []optionModel `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE"`
}

func (pollModel) TableName() string { return "polls" }

type optionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PollID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      string    `gorm:"column:option_text;not null"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
}

func (optionModel) TableName() string { return "poll_options" }

type voteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PollID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_poll_user"`
	OptionID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_poll_user"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (voteModel) TableName() string { return "votes" }

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func (m *refreshTokenModel) toDomain() *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		Revoked:   m.Revoked,
		CreatedAt: m.CreatedAt,
	}
}

func newPollModel(p *domain.Poll) *pollModel {
	m := &pollModel{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CreatedBy:   p.CreatedBy,
		IsActive:    p.IsActive,
		EndsAt:      p.EndsAt,
		CreatedAt:   p.CreatedAt,
	}
	for _, opt := range p.Options {
		m.Options = append(m.Options, optionModel{
			ID:        opt.ID,
			PollID:    opt.PollID,
			Text:      opt.Text,
			Position:  opt.Position,
			CreatedAt: opt.CreatedAt,
		})
	}
	return m
}

func (m *pollModel) toDomain() *domain.Poll {
	p := &domain.Poll{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		CreatedBy:   m.CreatedBy,
		IsActive:    m.IsActive,
		EndsAt:      m.EndsAt,
		CreatedAt:   m.CreatedAt,
	}
	for i := range m.Options {
		p.Options = append(p.Options, m.Options[i].toDomain())
	}
	return p
}

func (m *optionModel) toDomain() domain.PollOption {
	return domain.PollOption{
		ID:        m.ID,
		PollID:    m.PollID,
		Text:      m.Text,
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
	}
}

func newVoteModel(v *domain.Vote) *voteModel {
	return &voteModel{
		ID:        v.ID,
		PollID:    v.PollID,
		OptionID:  v.OptionID,
		UserID:    v.UserID,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func (m *voteModel) toDomain() *domain.Vote {
	return &domain.Vote{
		ID:        m.ID,
		PollID:    m.PollID,
		OptionID:  m.OptionID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
