package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToDelete = errors.New("failed to delete record")
)
