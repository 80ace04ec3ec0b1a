package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert venue")
	ErrFailedToList   = errors.New("failed to list venues")
)
