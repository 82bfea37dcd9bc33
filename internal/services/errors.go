package services

import "errors"

var (
	// ErrNotAllowed covers both "record does not exist" and "record belongs
	// to someone else". Callers must not be able to tell which, so both
	// conditions share one sentinel and one response code.
	ErrNotAllowed = errors.New("not allowed")

	ErrNameRequired     = errors.New("name is required")
	ErrFullNameRequired = errors.New("full_name is required")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidStage     = errors.New("invalid deal stage")
	ErrInvalidDueDate   = errors.New("due_date must be RFC 3339 or YYYY-MM-DD")
)
