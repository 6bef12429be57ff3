package route

import "errors"

var (
	ErrInvalidDate     = errors.New("invalid route date")
	ErrInvalidDistance = errors.New("invalid distance")
	ErrInvalidDuration = errors.New("invalid duration")

	ErrRouteNotFound = errors.New("route not found")
	ErrNotOwner      = errors.New("route belongs to another user")

	ErrNoWaypoints   = errors.New("route has no resolvable waypoints")
	ErrBadSuggestion = errors.New("suggestion does not match route waypoints")
)
