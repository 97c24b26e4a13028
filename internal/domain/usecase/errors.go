package usecase

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrUpstream        = errors.New("upstream request failed")
	ErrRateLimited     = errors.New("upstream rate limit exceeded")
	ErrTokenMissing    = errors.New("GitHub token not configured")
	ErrHistoryDisabled = errors.New("history disabled")
)
