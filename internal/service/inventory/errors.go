package inventory

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidWeight         = errors.New("invalid weight")

	ErrItemNotFound = errors.New("inventory item not found")
	ErrNotOwner     = errors.New("inventory item belongs to another user")
)
