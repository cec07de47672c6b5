package domain

import "errors"

var (
	ErrInvalidQuery = errors.New("safestay: invalid query")
	ErrNotFound     = errors.New("safestay: not found")
)
