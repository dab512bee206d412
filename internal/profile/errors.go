package profile

import "errors"

var (
	ErrNotFound     = errors.New("education entry not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrSaveFailed   = errors.New("failed to save profile")
)
