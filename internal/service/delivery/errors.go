package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid delivery status")
	ErrInvalidSchedule       = errors.New("invalid scheduled time")

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrNotOwner         = errors.New("delivery belongs to another user")
)
