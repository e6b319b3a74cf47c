package domain

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrHistoryIndex  = errors.New("history index out of range")
	ErrEmptyInput    = errors.New("empty input")
)
