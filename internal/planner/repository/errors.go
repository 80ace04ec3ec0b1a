package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert planner")
	ErrFailedToList   = errors.New("failed to list planners")
)
