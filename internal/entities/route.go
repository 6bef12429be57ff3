package entities

import "time"

type Route struct {
	ID              int64
	UserID          int64
	Date            time.Time
	Waypoints       []int64
	DistanceKM      float64
	DurationMinutes int64
	Optimized       bool
	Suggestion      *RouteSuggestion
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RouteSuggestion is the payload produced by the optimization collaborator.
type RouteSuggestion struct {
	WaypointOrder   []int64
	DistanceKM      float64
	DurationMinutes int64
	Summary         string
}

// RouteDraft is the writable field set; replacing it drops any previous
// suggestion since the suggestion was computed for the old waypoints.
type RouteDraft struct {
	Date            time.Time
	Waypoints       []int64
	DistanceKM      float64
	DurationMinutes int64
}

type RouteFilter struct {
	Date *time.Time
}
