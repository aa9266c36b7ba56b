package domain

import "errors"

var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfig      = errors.New("config file is empty")
	ErrUnknownScheduler = errors.New("unknown scheduler")
	ErrUnknownMode      = errors.New("unknown scheduler mode")
)
