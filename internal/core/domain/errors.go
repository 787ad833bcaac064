package domain

import "errors"

var (
	ErrPollNotFound   = errors.New("poll not found")
	ErrInvalidPollID  = errors.New("invalid poll id")
	ErrInvalidOption  = errors.New("invalid option for this poll")
	ErrOptionNotFound = errors.New("option not found")
	ErrVoteNotFound   = errors.New("user did not vote on this poll")
	ErrValidation     = errors.New("validation failed")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
