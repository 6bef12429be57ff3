package schedule

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidType           = errors.New("invalid entry type")
	ErrInvalidTimeRange      = errors.New("invalid time range")

	ErrEntryNotFound = errors.New("schedule entry not found")
	ErrNotOwner      = errors.New("schedule entry belongs to another user")
)
