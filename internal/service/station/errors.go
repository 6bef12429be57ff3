package station

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidType           = errors.New("invalid station type")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrInvalidRadius         = errors.New("invalid search radius")

	ErrStationNotFound = errors.New("station not found")
)
