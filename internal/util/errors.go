package util

import "errors"

var (
	ErrMissingFields = errors.New("Name, score, and difficulty are required")
)
