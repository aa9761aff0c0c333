package model

import "errors"

// Failure classes surfaced by the lookup flow. Adapters wrap them with detail.
var (
	ErrInvalidURL          = errors.New("invalid leetcode problem url")
	ErrUpstreamUnavailable = errors.New("leetcode upstream unavailable")
	ErrProblemNotFound     = errors.New("problem not found")
)
