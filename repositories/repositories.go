package repositories

import "errors"

// Shared storage errors. Both the gorm and memory implementations return
// these so services never depend on driver error types.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
